package skillcheck

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// GainStat raises a stat if its cooldown has elapsed, possibly lowering
// another stat to make room. It reports whether the stat went up.
func (e *Engine) GainStat(m *entities.Mobile, stat entities.Stat) bool {
	mustMobile(m)
	a := m.Stats

	now := e.clock.Now()
	if !a.LastGain[stat].Add(e.statCooldown(m)).Before(now) {
		return false
	}
	a.LastGain[stat] = now

	var atrophy bool
	if a.Cap > 0 {
		atrophy = float64(a.RawTotal())/float64(a.Cap) >= e.rand.Float64()
	}

	return e.increaseStat(m, stat, atrophy)
}

// CanRaise reports whether stat may go up by one
func (e *Engine) CanRaise(m *entities.Mobile, stat entities.Stat) bool {
	mustMobile(m)
	a := m.Stats

	if a.Lock(stat) != entities.LockUp {
		return false
	}
	if !m.IsPet() && a.RawTotal() >= a.Cap {
		return false
	}
	return a.Get(stat) < e.statCeiling(a.Cap)
}

func canLower(a *entities.Attributes, stat entities.Stat) bool {
	return a.Lock(stat) == entities.LockDown && a.Get(stat) > entities.StatFloor
}

func (e *Engine) statCeiling(statCap int) int {
	if statCap > e.tuning.Stats.HighCapThreshold {
		return e.tuning.Stats.HighMax
	}
	return e.tuning.Stats.NormalMax
}

func (e *Engine) statCooldown(m *entities.Mobile) time.Duration {
	t := &e.tuning.Stats
	if m.IsPet() {
		return t.PetCooldown
	}

	cd := t.PlayerCooldown
	if !m.IsPlayer() {
		return cd
	}
	if m.Context.SoulBound {
		cd = e.phylactery.StatCooldownScale(m.ID, cd)
	}
	if m.Context.FastGain > t.FastGainThreshold {
		cd = time.Duration(float64(cd) / t.FastGainDivisor)
	}
	return cd
}

// atrophyOrder lists, per raised stat, the two stats that may be lowered
var atrophyOrder = [entities.StatCount][2]entities.Stat{
	entities.Str: {entities.Dex, entities.Int},
	entities.Dex: {entities.Str, entities.Int},
	entities.Int: {entities.Str, entities.Dex},
}

func (e *Engine) increaseStat(m *entities.Mobile, stat entities.Stat, atrophy bool) bool {
	a := m.Stats
	atrophy = atrophy || a.RawTotal() >= a.Cap

	if atrophy {
		first, second := atrophyOrder[stat][0], atrophyOrder[stat][1]
		switch {
		case canLower(a, first) && (a.Get(first) < a.Get(second) || !canLower(a, second)):
			a.Set(first, a.Get(first)-1)
		case canLower(a, second):
			a.Set(second, a.Get(second)-1)
		}
	}

	if !e.CanRaise(m, stat) {
		return false
	}

	a.Set(stat, a.Get(stat)+1)
	e.logger.Debug("stat gained",
		"entity_id", m.ID,
		"stat", stat.String(),
		"value", a.Get(stat))
	return true
}
