package skillcheck

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/rng"
)

// Evaluate converts a skill value and a difficulty band into a trial
// probability. ok is false when the skill is below minSkill and no trial
// should be rolled.
func Evaluate(skillValue, minSkill, maxSkill float64) (p float64, ok bool) {
	switch {
	case skillValue < minSkill:
		return 0, false
	case skillValue >= maxSkill:
		return 1, true
	default:
		return (skillValue - minSkill) / (maxSkill - minSkill), true
	}
}

// EvaluateDirect passes a direct probability through. Negative
// probabilities roll no trial.
func EvaluateDirect(p float64) (float64, bool) {
	if p < 0 {
		return 0, false
	}
	return p, true
}

// Trial rolls a single pass/fail against p
func Trial(p float64, src rng.Source) bool {
	return p >= src.Float64()
}

func evaluate(skillValue float64, d engine.Difficulty) (float64, bool) {
	if d.Direct {
		return EvaluateDirect(d.Chance)
	}
	return Evaluate(skillValue, d.MinSkill, d.MaxSkill)
}
