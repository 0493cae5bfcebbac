package skillcheck

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

func (s *EngineTestSuite) locationCheck(m *entities.Mobile, skill entities.SkillName) *engine.CheckOutput {
	return s.engine.CheckLocation(&CheckLocationInput{
		Mobile:     m,
		Skill:      skill,
		Difficulty: engine.Band(0, 100),
	})
}

func (s *EngineTestSuite) expectMacro(skill entities.SkillName, allowed bool) {
	s.mockMacro.EXPECT().
		Allow(testutils.TestPlayerID, skill, engine.LocationKey(1000, 1000, 5)).
		Return(allowed)
}

func (s *EngineTestSuite) TestCheckLocationSuccessAndGain() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	s.expectMacro(entities.Swords, true)

	// trial, gain draw
	s.rand.PushFloats(0.3, 0.1)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.Attempted)
	s.True(out.Success)
	s.False(out.Rescued)
	s.InDelta(0.5, out.Chance, 1e-9)
	s.InDelta(0.825, out.GainChance, 1e-9)
	s.Require().NotNil(out.Gain)
	s.True(out.Gain.Raised())
	s.Equal(502, m.Skills.Get(entities.Swords).Base)
	s.False(out.StatRaised)
}

func (s *EngineTestSuite) TestCheckLocationRaisesStat() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	s.expectMacro(entities.Swords, true)

	// trial, gain draw, redistribution, Str selection
	s.rand.PushFloats(0.3, 0.1, 0.99, 0.01)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.StatRaised)
	s.Equal(entities.Str, out.Stat)
	s.Equal(51, m.Stats.Get(entities.Str))
}

func (s *EngineTestSuite) TestCheckSkipsLockedStats() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	m.Stats.SetLock(entities.Str, entities.LockLocked)
	s.expectMacro(entities.Swords, true)

	// Str is skipped without a draw, Dex passes 0.25/33.3
	s.rand.PushFloats(0.3, 0.1, 0.99, 0.005)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.Gain.Raised())
	s.True(out.StatRaised)
	s.Equal(entities.Dex, out.Stat)
}

func (s *EngineTestSuite) TestCheckSelectionReachesInt() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Magery, 500)

	// trial, gain draw, redistribution, then one draw per Up stat; Magery
	// carries only Int weight so Str and Dex can never pass
	s.rand.PushFloats(0.3, 0, 0.99, 0.5, 0.5, 0.01)

	out := s.locationCheck(m, entities.Magery)
	s.Require().NotNil(out.Gain)
	s.True(out.Gain.Raised())
	s.True(out.StatRaised)
	s.Equal(entities.Int, out.Stat)
	s.Equal(51, m.Stats.Get(entities.Int))
	s.Equal(50, m.Stats.Get(entities.Str))
}

func (s *EngineTestSuite) TestCheckBelowMinimumRollsNothing() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)

	out := s.engine.CheckLocation(&CheckLocationInput{
		Mobile:     m,
		Skill:      entities.Swords,
		Difficulty: engine.Band(60, 100),
	})
	s.False(out.Attempted)
	s.False(out.Success)
	s.Nil(out.Gain)
	s.Zero(s.rand.FloatCalls)

	out = s.engine.CheckLocation(&CheckLocationInput{
		Mobile:     m,
		Skill:      entities.Swords,
		Difficulty: engine.DirectChance(-1),
	})
	s.False(out.Attempted)
	s.Zero(s.rand.FloatCalls)
}

func (s *EngineTestSuite) TestCheckZeroTotalCap() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	m.Skills.Cap = 0

	out := s.locationCheck(m, entities.Swords)
	s.False(out.Attempted)
	s.InDelta(0.5, out.Chance, 1e-9)
	s.Zero(s.rand.FloatCalls)
}

func (s *EngineTestSuite) TestCheckAntiMacroBlocksGain() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	s.expectMacro(entities.Swords, false)
	s.rand.PushFloats(0.3, 0.0)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.Success)
	s.Nil(out.Gain)
	s.Equal(500, m.Skills.Get(entities.Swords).Base)
}

func (s *EngineTestSuite) TestCheckLowSkillAlwaysGains() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 50)
	s.expectMacro(entities.Swords, false)

	out := s.locationCheck(m, entities.Swords)
	s.Require().NotNil(out.Gain)
	s.True(out.Gain.Raised())
	s.Equal(52, m.Skills.Get(entities.Swords).Base)
}

func (s *EngineTestSuite) TestCheckAntiMacroOnlyForFlaggedPlayerSkills() {
	s.mockMacro.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Alchemy, 500)
	s.rand.PushFloats(0.3, 0.1)
	s.True(s.locationCheck(m, entities.Alchemy).Gain.Raised())

	pet := testutils.WithSkill(testutils.CreateTestPet(), entities.Swords, 500)
	s.rand.PushFloats(0.3, 0.1)
	s.True(s.locationCheck(pet, entities.Swords).Gain.Raised())
}

func (s *EngineTestSuite) TestCheckAntiMacroDisabled() {
	s.tuning.AntiMacro.Enabled = false
	s.engine = s.newEngine(func(c *Config) { c.AntiMacro = nil })

	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	s.rand.PushFloats(0.3, 0.1)
	s.True(s.locationCheck(m, entities.Swords).Gain.Raised())
}

func (s *EngineTestSuite) TestCheckDeadMobileDoesNotGain() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 50)
	m.Alive = false
	s.expectMacro(entities.Swords, true)
	s.rand.PushFloats(0.3, 0.0)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.Attempted)
	s.Nil(out.Gain)
}

func (s *EngineTestSuite) TestCheckFishingNeedsBoatAtHighSkill() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Fishing, 700)
	s.rand.PushFloats(0.1, 0.0)

	out := s.locationCheck(m, entities.Fishing)
	s.Require().NotNil(out.Gain)
	s.Equal(engine.GainGated, out.Gain.Outcome)
	s.Equal(700, m.Skills.Get(entities.Fishing).Base)

	m.Context.OnBoat = true
	s.rand.PushFloats(0.1, 0.0)
	out = s.locationCheck(m, entities.Fishing)
	s.True(out.Gain.Raised())
	s.Equal(701, m.Skills.Get(entities.Fishing).Base)
}

func (s *EngineTestSuite) TestCheckStimulantRescue() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	m.Context.Stimulant = 10
	s.expectMacro(entities.Swords, true)

	// failed trial, no gain, rescue under 0.08 * 10 / 60
	s.rand.PushFloats(0.9, 0.999, 0.01)

	out := s.locationCheck(m, entities.Swords)
	s.True(out.Success)
	s.True(out.Rescued)
	s.Nil(out.Gain)
}

func (s *EngineTestSuite) TestCheckStimulantMissStillFails() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	m.Context.Stimulant = 10
	s.expectMacro(entities.Swords, true)
	s.rand.PushFloats(0.9, 0.999, 0.5)

	out := s.locationCheck(m, entities.Swords)
	s.False(out.Success)
	s.False(out.Rescued)
}

func (s *EngineTestSuite) TestCheckTargetKeysByTarget() {
	m := testutils.WithSkill(testutils.CreateTestPlayer(), entities.Swords, 500)
	s.mockMacro.EXPECT().
		Allow(testutils.TestPlayerID, entities.Swords, engine.TargetKey("dummy-1")).
		Return(true)
	s.rand.PushFloats(0.3, 0.1)

	out := s.engine.CheckTarget(&CheckTargetInput{
		Mobile:     m,
		Skill:      entities.Swords,
		Target:     &entities.Target{ID: "dummy-1"},
		Difficulty: engine.Band(0, 100),
	})
	s.True(out.Gain.Raised())
}

func (s *EngineTestSuite) TestCheckTargetRequiresTarget() {
	m := testutils.CreateTestPlayer()
	s.Panics(func() {
		s.engine.CheckTarget(&CheckTargetInput{Mobile: m, Skill: entities.Swords, Difficulty: engine.Band(0, 100)})
	})
}
