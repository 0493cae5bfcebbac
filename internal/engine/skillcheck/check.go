package skillcheck

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// CheckLocation resolves a skill use aimed at the mobile's surroundings.
// Repeated uses are bucketed by location cell for anti-macro purposes.
func (e *Engine) CheckLocation(input *CheckLocationInput) *engine.CheckOutput {
	if input == nil {
		errors.Violation("skillcheck: check input is required")
	}
	mustMobile(input.Mobile)

	loc := input.Mobile.Context.Location
	key := engine.LocationKey(loc.X, loc.Y, e.tuning.AntiMacro.LocationSize)
	return e.check(input.Mobile, input.Skill, nil, input.Difficulty, key)
}

// CheckTarget resolves a skill use aimed at another object
func (e *Engine) CheckTarget(input *CheckTargetInput) *engine.CheckOutput {
	if input == nil {
		errors.Violation("skillcheck: check input is required")
	}
	mustMobile(input.Mobile)
	if input.Target == nil {
		errors.Violation("skillcheck: target is required for a targeted check")
	}

	key := engine.TargetKey(input.Target.ID)
	return e.check(input.Mobile, input.Skill, input.Target, input.Difficulty, key)
}

// CheckLocationInput and CheckTargetInput are re-exported so callers of this
// package need not import engine for the common path.
type (
	CheckLocationInput = engine.CheckLocationInput
	CheckTargetInput   = engine.CheckTargetInput
)

func (e *Engine) check(
	m *entities.Mobile,
	name entities.SkillName,
	target *entities.Target,
	d engine.Difficulty,
	key engine.MacroKey,
) *engine.CheckOutput {
	sk := m.Skills.Get(name)

	chance, ok := evaluate(sk.Value(), d)
	if !ok {
		return &engine.CheckOutput{}
	}

	out := &engine.CheckOutput{Chance: chance}
	if m.Skills.Cap == 0 {
		return out
	}
	out.Attempted = true

	gainer := e.gainer(m, name)
	out.Success = Trial(chance, e.rand)
	region := e.regions.Classify(m.Context.Location)

	gc := e.gainChance(gainInput{
		mobile:  m,
		skill:   sk,
		target:  target,
		chance:  chance,
		success: out.Success,
		gainer:  gainer,
		region:  region,
	})
	out.GainChance = gc

	draw := e.rand.Float64()
	allowed := e.allowGain(m, name, key)

	if m.Alive && ((gc >= draw && allowed) || sk.Base < e.tuning.Gain.AlwaysGainBelow) {
		out.Gain = e.attemptGain(m, sk, region)
		if out.Gain.Raised() && sk.Lock == entities.LockUp {
			if stat, picked := e.selectStat(m, sk); picked {
				out.Stat = stat
				out.StatRaised = e.GainStat(m, stat)
			}
		}
	}

	if !out.Success && m.IsPlayer() && m.Context.Stimulant > 0 {
		t := &e.tuning.Gain
		if e.rand.Float64() < t.StimulantMultiplier*float64(m.Context.Stimulant)/t.StimulantDivisor {
			out.Success = true
			out.Rescued = true
		}
	}

	e.logger.Debug("skill check",
		"entity_id", m.ID,
		"skill", name.String(),
		"chance", chance,
		"success", out.Success,
		"gain_chance", gc,
		"macro_allowed", allowed)

	return out
}

// allowGain consults the anti-macro gate for flagged player skills. The gate
// is always consulted so repeated uses are counted even when no gain follows.
func (e *Engine) allowGain(m *entities.Mobile, name entities.SkillName, key engine.MacroKey) bool {
	if !e.tuning.AntiMacro.Enabled || !m.IsPlayer() || !e.macroSkills[name] {
		return true
	}
	return e.antiMacro.Allow(m.ID, name, key)
}

func (e *Engine) attemptGain(m *entities.Mobile, sk *entities.Skill, region engine.RegionClass) *engine.GainResult {
	if gate, ok := e.gainGates[sk.Name]; ok && !gate(m, sk) {
		return &engine.GainResult{Outcome: engine.GainGated, NewBase: sk.Base}
	}
	return e.gain(m, sk.Name, region)
}

// selectStat picks the first stat, in Str Dex Int order, whose lock is Up and
// whose weighted draw passes
func (e *Engine) selectStat(m *entities.Mobile, sk *entities.Skill) (entities.Stat, bool) {
	info := sk.Info()
	weights := [entities.StatCount]float64{
		entities.Str: info.StrGain,
		entities.Dex: info.DexGain,
		entities.Int: info.IntGain,
	}

	for stat := entities.Str; int(stat) < entities.StatCount; stat++ {
		if m.Stats.Lock(stat) != entities.LockUp {
			continue
		}
		if weights[stat]/e.tuning.Stats.StatGainDivisor > e.rand.Float64() {
			return stat, true
		}
	}
	return 0, false
}
