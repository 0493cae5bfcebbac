package skillcheck

import (
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Gain attempts to raise a skill by its banded amount
func (e *Engine) Gain(m *entities.Mobile, skill entities.SkillName) *engine.GainResult {
	mustMobile(m)
	return e.gain(m, skill, e.regions.Classify(m.Context.Location))
}

func (e *Engine) gain(m *entities.Mobile, name entities.SkillName, region engine.RegionClass) *engine.GainResult {
	switch {
	case region.NoSkillGain:
		return &engine.GainResult{Outcome: engine.GainNoSkillGainRegion}
	case m.DeadPet:
		return &engine.GainResult{Outcome: engine.GainDeadPet}
	case name == entities.Focus && !m.IsPlayer():
		return &engine.GainResult{Outcome: engine.GainMetaSkillNonPlayer}
	}

	sk := m.Skills.Get(name)
	if sk.Lock != entities.LockUp || sk.Base >= sk.Cap {
		return &engine.GainResult{Outcome: engine.GainLockedOrCapped, NewBase: sk.Base}
	}

	amount := e.bandAmount(sk.Base, region.Ruleset)
	if amount > 0 && e.meditative[name] {
		amount = 0
		if e.rand.IntRange(0, e.tuning.Ledger.MeditativeRoll) == 1 {
			amount = 1
		}
	}
	if amount == 0 {
		return &engine.GainResult{Outcome: engine.GainRolledZero, NewBase: sk.Base}
	}

	// the sibling pays exactly what this skill can still take
	amount = min(amount, sk.Cap-sk.Base)

	result := &engine.GainResult{}
	skills := m.Skills

	if m.IsPlayer() && skills.Cap > 0 && float64(skills.Total())/float64(skills.Cap) >= e.rand.Float64() {
		if lowered, ok := lowerSibling(skills, name, amount); ok {
			result.Lowered = true
			result.LoweredSkill = lowered
		}
	}

	if name == m.Context.AcceleratedSkill && e.clock.Now().Before(m.Context.AcceleratedUntil) {
		amount *= e.rand.IntRange(e.tuning.Ledger.AlacrityMin, e.tuning.Ledger.AlacrityMax)
		amount = min(amount, sk.Cap-sk.Base)
	}

	if m.IsPlayer() && skills.Total()+amount > skills.Cap {
		result.Outcome = engine.GainOverTotalCap
		result.NewBase = sk.Base
		e.logger.Debug("skill gain blocked by total cap",
			"entity_id", m.ID,
			"skill", name.String(),
			"total", skills.Total(),
			"cap", skills.Cap)
		return result
	}

	before := sk.Base
	sk.SetBase(before + amount)

	result.Outcome = engine.GainRaised
	result.Amount = sk.Base - before
	result.NewBase = sk.Base

	threshold := e.tuning.Ledger.MilestoneThreshold
	if m.IsPlayer() && before < threshold && sk.Base >= threshold {
		result.Milestone = true
		e.milestones.Record(m.ID, name, sk.Base)
		e.logger.Info("skill milestone reached",
			"entity_id", m.ID,
			"skill", name.String(),
			"base", sk.Base)
	}

	e.refresh.Notify(m.ID)

	e.logger.Debug("skill gained",
		"entity_id", m.ID,
		"skill", name.String(),
		"amount", result.Amount,
		"base", sk.Base,
		"lowered", result.Lowered)

	return result
}

// bandAmount draws the raw gain for a skill at base under the ruleset
func (e *Engine) bandAmount(base int, ruleset engine.Ruleset) int {
	bands := e.tuning.Ledger.NormalBands
	if ruleset == engine.RulesetAlternate {
		bands = e.tuning.Ledger.AlternateBands
	}

	for i, b := range bands {
		if i == len(bands)-1 || base <= b.UpTo {
			return e.rollBand(b)
		}
	}
	return 0
}

func (e *Engine) rollBand(b config.GainBand) int {
	if b.Roll > 0 {
		if e.rand.IntRange(0, b.Roll) == 1 {
			return 1
		}
		return 0
	}
	if b.Min == b.Max {
		return b.Min
	}
	return e.rand.IntRange(b.Min, b.Max)
}

// lowerSibling takes amount from the first other skill locked Down that can
// afford it
func lowerSibling(skills *entities.SkillSet, raised entities.SkillName, amount int) (entities.SkillName, bool) {
	for i := range skills.Skills {
		other := &skills.Skills[i]
		if other.Name == raised || other.Lock != entities.LockDown || other.Base < amount {
			continue
		}
		other.SetBase(other.Base - amount)
		return other.Name, true
	}
	return 0, false
}
