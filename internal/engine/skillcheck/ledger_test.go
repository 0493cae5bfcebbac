package skillcheck

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

func (s *EngineTestSuite) TestGainRefusals() {
	s.Run("no skill gain region", func() {
		s.withRegion(engine.RegionClass{Kind: engine.RegionNamed, Name: "Jail", NoSkillGain: true}, 0)
		m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)

		res := s.engine.Gain(m, entities.Swords)
		s.Equal(engine.GainNoSkillGainRegion, res.Outcome)
		s.Equal(500, m.Skills.Get(entities.Swords).Base)
		s.engine = s.newEngine()
	})

	s.Run("dead pet", func() {
		m := testutils.CreateTestPet()
		m.DeadPet = true

		s.Equal(engine.GainDeadPet, s.engine.Gain(m, entities.Wrestling).Outcome)
	})

	s.Run("focus on a non-player", func() {
		s.Equal(engine.GainMetaSkillNonPlayer, s.engine.Gain(testutils.CreateTestCreature(), entities.Focus).Outcome)
	})

	s.Run("locked", func() {
		m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
		m.Skills.Get(entities.Swords).Lock = entities.LockLocked

		res := s.engine.Gain(m, entities.Swords)
		s.Equal(engine.GainLockedOrCapped, res.Outcome)
		s.Equal(500, res.NewBase)
	})

	s.Run("at cap", func() {
		m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 1000)

		res := s.engine.Gain(m, entities.Swords)
		s.Equal(engine.GainLockedOrCapped, res.Outcome)
		s.False(res.Raised())
	})

	s.Equal(0, s.rand.FloatCalls+s.rand.IntCalls, "refusals draw nothing")
}

func (s *EngineTestSuite) TestGainBands() {
	testCases := []struct {
		name   string
		base   int
		ints   []int
		amount int
	}{
		{name: "low band draws 2 to 3", base: 100, ints: []int{3}, amount: 3},
		{name: "fixed 2", base: 500, amount: 2},
		{name: "fixed 1", base: 800, amount: 1},
		{name: "roll hit", base: 930, ints: []int{1}, amount: 1},
		{name: "roll miss", base: 930, ints: []int{0}, amount: 0},
		{name: "top band hit", base: 1150, ints: []int{1}, amount: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.rand = testutils.NewScriptedRand().PushInts(tc.ints...)
			s.engine = s.newEngine()

			m := testutils.CreateTestCreature()
			m.Skills.Get(entities.Swords).Cap = 1200
			testutils.WithSkill(m, entities.Swords, tc.base)

			res := s.engine.Gain(m, entities.Swords)
			s.Equal(tc.amount, res.Amount)
			s.Equal(tc.base+tc.amount, m.Skills.Get(entities.Swords).Base)
			if tc.amount == 0 {
				s.Equal(engine.GainRolledZero, res.Outcome)
			}

			floats, ints := s.rand.Remaining()
			s.Zero(floats)
			s.Zero(ints)
		})
	}
}

func (s *EngineTestSuite) TestGainAlternateRuleset() {
	s.withRegion(engine.RegionClass{Kind: engine.RegionNone, Ruleset: engine.RulesetAlternate}, 0)
	s.rand.PushInts(4)

	m := testutils.WithSkill(testutils.CreateTestCreature(), entities.Swords, 100)
	res := s.engine.Gain(m, entities.Swords)
	s.Equal(4, res.Amount)

	testutils.WithSkill(m, entities.Swords, 950)
	res = s.engine.Gain(m, entities.Swords)
	s.Equal(1, res.Amount, "alternate curve grants a fixed point up to 100.0")
}

func (s *EngineTestSuite) TestGainMasteryBandDistribution() {
	s.engine = s.newEngine(func(c *Config) { c.Rand = rng.NewSeeded(42) })

	m := testutils.CreateTestCreature()
	sk := m.Skills.Get(entities.Swords)
	sk.Cap = 2000
	sk.Base = 1200

	raised := 0
	for i := 0; i < 1000; i++ {
		res := s.engine.Gain(m, entities.Swords)
		s.Require().LessOrEqual(res.Amount, 1)
		if res.Raised() {
			raised++
		}
	}

	// one in six per attempt
	s.GreaterOrEqual(raised, 100)
	s.LessOrEqual(raised, 240)
	s.Equal(1200+raised, sk.Base)
}

func (s *EngineTestSuite) TestGainMeditativeThrottle() {
	s.rand.PushInts(3, 1, 3, 0)

	m := testutils.WithSkill(testutils.CreateTestCreature(), entities.Meditation, 100)

	res := s.engine.Gain(m, entities.Meditation)
	s.Equal(1, res.Amount)

	res = s.engine.Gain(m, entities.Meditation)
	s.Equal(engine.GainRolledZero, res.Outcome)
	s.Equal(101, m.Skills.Get(entities.Meditation).Base)
}

func (s *EngineTestSuite) TestGainAlacrity() {
	m := testutils.WithSkill(testutils.CreateTestCreature(), entities.Swords, 500)
	m.Context.AcceleratedSkill = entities.Swords
	m.Context.AcceleratedUntil = s.now.Add(time.Minute)

	s.rand.PushInts(3)
	res := s.engine.Gain(m, entities.Swords)
	s.Equal(6, res.Amount)

	m.Context.AcceleratedUntil = s.now
	res = s.engine.Gain(m, entities.Swords)
	s.Equal(2, res.Amount, "expired scroll")
	s.Equal(1, s.rand.IntCalls)
}

// fillSkills sets the first n skills, other than skip, to base
func fillSkills(m *entities.Mobile, n, base int, skip ...entities.SkillName) {
	skipped := map[entities.SkillName]bool{}
	for _, name := range skip {
		skipped[name] = true
	}
	for i := range m.Skills.Skills {
		if n == 0 {
			return
		}
		if skipped[m.Skills.Skills[i].Name] {
			continue
		}
		m.Skills.Skills[i].Base = base
		n--
	}
}

func (s *EngineTestSuite) TestGainRedistributesNearTotalCap() {
	m := testutils.CreateTestPlayer()
	fillSkills(m, 6, 1000, entities.Parry, entities.Swords)
	testutils.WithSkill(m, entities.Parry, 790)
	testutils.WithSkill(m, entities.Swords, 200)
	m.Skills.Get(entities.Parry).Lock = entities.LockDown
	m.Context.AcceleratedSkill = entities.Swords
	m.Context.AcceleratedUntil = s.now.Add(time.Minute)
	s.Require().Equal(6990, m.Skills.Total())

	s.rand.PushInts(3, 4).PushFloats(0.5)

	res := s.engine.Gain(m, entities.Swords)
	s.Equal(engine.GainRaised, res.Outcome)
	s.Equal(12, res.Amount)
	s.True(res.Lowered)
	s.Equal(entities.Parry, res.LoweredSkill)
	s.Equal(787, m.Skills.Get(entities.Parry).Base, "the sibling pays the amount before the scroll multiplies it")
	s.Equal(212, m.Skills.Get(entities.Swords).Base)
	s.Equal(6999, m.Skills.Total())
}

func (s *EngineTestSuite) TestGainRedistributionIsZeroSumAtSkillCap() {
	m := testutils.CreateTestPlayer()
	fillSkills(m, 6, 1000, entities.Parry, entities.Swords)
	testutils.WithSkill(m, entities.Parry, 499)
	m.Skills.Get(entities.Parry).Lock = entities.LockDown
	sk := m.Skills.Get(entities.Swords)
	sk.Cap = 101
	sk.Base = 100
	s.Require().Equal(6599, m.Skills.Total())

	s.rand.PushInts(3).PushFloats(0.5)

	res := s.engine.Gain(m, entities.Swords)
	s.Equal(engine.GainRaised, res.Outcome)
	s.Equal(1, res.Amount)
	s.True(res.Lowered)
	s.Equal(498, m.Skills.Get(entities.Parry).Base)
	s.Equal(101, sk.Base)
	s.Equal(6599, m.Skills.Total())
}

func (s *EngineTestSuite) TestGainBlockedAtTotalCap() {
	m := testutils.CreateTestPlayer()
	fillSkills(m, 6, 1000, entities.Parry, entities.Swords)
	testutils.WithSkill(m, entities.Parry, 499)
	testutils.WithSkill(m, entities.Swords, 500)
	s.Require().Equal(6999, m.Skills.Total())

	s.rand.PushFloats(0.5)

	res := s.engine.Gain(m, entities.Swords)
	s.Equal(engine.GainOverTotalCap, res.Outcome)
	s.False(res.Raised())
	s.Equal(6999, m.Skills.Total())
}

func (s *EngineTestSuite) TestGainSiblingTooSmallIsNotLowered() {
	m := testutils.CreateTestPlayer()
	fillSkills(m, 6, 1000, entities.Parry, entities.Swords)
	testutils.WithSkill(m, entities.Parry, 1)
	testutils.WithSkill(m, entities.Swords, 500)
	testutils.WithSkill(m, entities.Blacksmith, 498)
	m.Skills.Get(entities.Parry).Lock = entities.LockDown
	s.Require().Equal(6999, m.Skills.Total())

	s.rand.PushFloats(0.1)

	res := s.engine.Gain(m, entities.Swords)
	s.Equal(engine.GainOverTotalCap, res.Outcome)
	s.False(res.Lowered)
	s.Equal(1, m.Skills.Get(entities.Parry).Base)
	s.Equal(6999, m.Skills.Total())
}

func (s *EngineTestSuite) TestGainMilestoneOnCommit() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 999)
	s.rand.PushInts(1)
	s.mockMilestones.EXPECT().Record(testutils.TestPlayerID, entities.Swords, 1000)

	res := s.engine.Gain(m, entities.Swords)
	s.True(res.Milestone)
	s.Equal(1000, res.NewBase)
}

func (s *EngineTestSuite) TestGainNoMilestoneForCreatures() {
	m := testutils.WithSkill(testutils.CreateTestCreature(), entities.Swords, 999)
	s.rand.PushInts(1)
	s.mockMilestones.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := s.engine.Gain(m, entities.Swords)
	s.True(res.Raised())
	s.False(res.Milestone)
}

func (s *EngineTestSuite) TestGainClampsToSkillCap() {
	m := testutils.CreateTestCreature()
	sk := m.Skills.Get(entities.Swords)
	sk.Cap = 101
	sk.Base = 100
	s.rand.PushInts(3)

	res := s.engine.Gain(m, entities.Swords)
	s.Equal(1, res.Amount)
	s.Equal(101, sk.Base)
}
