package skillcheck

import (
	"time"

	enginemock "github.com/KirkDiggler/rpg-progression/internal/engine/mock"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

func (s *EngineTestSuite) TestCanRaiseCeiling() {
	testCases := []struct {
		name    string
		statCap int
		value   int
		want    bool
	}{
		{name: "normal cap below ceiling", statCap: 225, value: 149, want: true},
		{name: "normal cap at ceiling", statCap: 225, value: 150, want: false},
		{name: "threshold cap uses normal ceiling", statCap: 275, value: 150, want: false},
		{name: "high cap below ceiling", statCap: 300, value: 174, want: true},
		{name: "high cap at ceiling", statCap: 300, value: 175, want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m := testutils.CreateTestPlayer()
			m.Stats = entities.NewAttributes(tc.value, 10, 10, tc.statCap)
			s.Equal(tc.want, s.engine.CanRaise(m, entities.Str))
		})
	}
}

func (s *EngineTestSuite) TestCanRaiseLocksAndTotal() {
	m := testutils.CreateTestPlayer()
	m.Stats = entities.NewAttributes(50, 50, 50, 150)
	s.False(s.engine.CanRaise(m, entities.Str), "at stat cap")

	pet := testutils.CreateTestPet()
	pet.Stats = entities.NewAttributes(50, 50, 50, 150)
	s.True(s.engine.CanRaise(pet, entities.Str), "pets ignore the total")

	m.Stats.Cap = 225
	m.Stats.SetLock(entities.Dex, entities.LockDown)
	s.False(s.engine.CanRaise(m, entities.Dex))
	m.Stats.SetLock(entities.Dex, entities.LockLocked)
	s.False(s.engine.CanRaise(m, entities.Dex))
}

func (s *EngineTestSuite) TestGainStatRespectsCooldown() {
	m := testutils.CreateTestPlayer()

	s.True(s.engine.GainStat(m, entities.Str))
	s.Equal(51, m.Stats.Get(entities.Str))
	s.Equal(s.now, m.Stats.LastGain[entities.Str])

	s.now = s.now.Add(14 * time.Minute)
	s.False(s.engine.GainStat(m, entities.Str))
	s.Equal(51, m.Stats.Get(entities.Str))

	s.True(s.engine.GainStat(m, entities.Dex), "cooldowns are per stat")

	s.now = s.now.Add(2 * time.Minute)
	s.True(s.engine.GainStat(m, entities.Str))
	s.Equal(52, m.Stats.Get(entities.Str))
}

func (s *EngineTestSuite) TestGainStatCooldowns() {
	testCases := []struct {
		name    string
		mobile  func() *entities.Mobile
		allowed time.Duration
		blocked time.Duration
	}{
		{
			name:    "player",
			mobile:  testutils.CreateTestPlayer,
			allowed: 15*time.Minute + time.Second,
			blocked: 15 * time.Minute,
		},
		{
			name:    "pet",
			mobile:  testutils.CreateTestPet,
			allowed: 5*time.Minute + time.Second,
			blocked: 5 * time.Minute,
		},
		{
			name: "fast gain halves",
			mobile: func() *entities.Mobile {
				m := testutils.CreateTestPlayer()
				m.Context.FastGain = 3
				return m
			},
			allowed: 7*time.Minute + 31*time.Second,
			blocked: 7*time.Minute + 30*time.Second,
		},
		{
			name: "fast gain at threshold does not",
			mobile: func() *entities.Mobile {
				m := testutils.CreateTestPlayer()
				m.Context.FastGain = 2
				return m
			},
			allowed: 15*time.Minute + time.Second,
			blocked: 15 * time.Minute,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			start := s.now

			blocked := tc.mobile()
			blocked.Stats.LastGain[entities.Int] = start.Add(-tc.blocked)
			s.False(s.engine.GainStat(blocked, entities.Int))

			allowed := tc.mobile()
			allowed.Stats.LastGain[entities.Int] = start.Add(-tc.allowed)
			s.True(s.engine.GainStat(allowed, entities.Int))
		})
	}
}

func (s *EngineTestSuite) TestGainStatPhylacteryThenFastGain() {
	phylactery := enginemock.NewMockPhylacteryModifier(s.ctrl)
	phylactery.EXPECT().
		StatCooldownScale(testutils.TestPlayerID, 15*time.Minute).
		Return(10 * time.Minute).
		Times(2)
	s.engine = s.newEngine(func(c *Config) { c.Phylactery = phylactery })

	m := testutils.CreateTestPlayer()
	m.Context.SoulBound = true
	m.Context.FastGain = 3

	m.Stats.LastGain[entities.Str] = s.now.Add(-5 * time.Minute)
	s.False(s.engine.GainStat(m, entities.Str))

	m.Stats.LastGain[entities.Str] = s.now.Add(-5*time.Minute - time.Second)
	s.True(s.engine.GainStat(m, entities.Str))
}

func (s *EngineTestSuite) TestGainStatAtrophy() {
	testCases := []struct {
		name   string
		values [3]int
		locks  [3]entities.Lock
		target entities.Stat
		want   [3]int
		raised bool
	}{
		{
			name:   "lowers the smaller down-locked stat",
			values: [3]int{50, 40, 60},
			locks:  [3]entities.Lock{entities.LockUp, entities.LockDown, entities.LockDown},
			target: entities.Str,
			want:   [3]int{51, 39, 60},
			raised: true,
		},
		{
			name:   "prefers the second when it is smaller",
			values: [3]int{50, 60, 40},
			locks:  [3]entities.Lock{entities.LockUp, entities.LockDown, entities.LockDown},
			target: entities.Str,
			want:   [3]int{51, 60, 39},
			raised: true,
		},
		{
			name:   "falls back to the only lowerable stat",
			values: [3]int{50, 40, 60},
			locks:  [3]entities.Lock{entities.LockUp, entities.LockUp, entities.LockDown},
			target: entities.Str,
			want:   [3]int{51, 40, 59},
			raised: true,
		},
		{
			name:   "never lowers below the floor",
			values: [3]int{10, 130, 10},
			locks:  [3]entities.Lock{entities.LockDown, entities.LockUp, entities.LockDown},
			target: entities.Dex,
			want:   [3]int{10, 130, 10},
			raised: false,
		},
		{
			name:   "nothing to lower at cap",
			values: [3]int{50, 50, 50},
			locks:  [3]entities.Lock{entities.LockUp, entities.LockUp, entities.LockUp},
			target: entities.Int,
			want:   [3]int{50, 50, 50},
			raised: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m := testutils.CreateTestPlayer()
			m.Stats = entities.NewAttributes(tc.values[0], tc.values[1], tc.values[2], 0)
			m.Stats.Cap = m.Stats.RawTotal()
			m.Stats.Locks = tc.locks

			s.Equal(tc.raised, s.engine.GainStat(m, tc.target))
			s.Equal(tc.want, m.Stats.Values)
		})
	}
}

func (s *EngineTestSuite) TestGainStatAtrophyDrawBelowCap() {
	m := testutils.CreateTestPlayer()
	m.Stats.SetLock(entities.Int, entities.LockDown)

	// 150 of 225 beats a 0.5 draw
	s.rand.PushFloats(0.5)
	s.True(s.engine.GainStat(m, entities.Str))
	s.Equal([3]int{51, 50, 49}, m.Stats.Values)
}
