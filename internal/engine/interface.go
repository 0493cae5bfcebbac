// Package engine defines the skill progression engine and the collaborators it consults
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-progression/internal/engine Engine,AntiMacroGate,PhylacteryModifier,RegionLookup,PresentationRefresh,MilestoneLog

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Engine resolves skill-use events against a single mobile.
// Implementations are synchronous and do no I/O; callers keep one writer per mobile.
type Engine interface {
	// Skill checks
	CheckLocation(input *CheckLocationInput) *CheckOutput
	CheckTarget(input *CheckTargetInput) *CheckOutput

	// Progression steps, exposed for callers that drive gains directly
	Gain(m *entities.Mobile, skill entities.SkillName) *GainResult
	GainStat(m *entities.Mobile, stat entities.Stat) bool
	CanRaise(m *entities.Mobile, stat entities.Stat) bool
}

// AntiMacroGate decides whether a repeated action may still produce gains
type AntiMacroGate interface {
	Allow(entityID string, skill entities.SkillName, key MacroKey) bool
}

// PhylacteryModifier reports bonuses granted by an equipped phylactery
type PhylacteryModifier interface {
	SkillGainBonus(entityID string) float64
	StatCooldownScale(entityID string, base time.Duration) time.Duration
}

// RegionLookup classifies world locations
type RegionLookup interface {
	DifficultyLevel(loc entities.Location) float64
	Classify(loc entities.Location) RegionClass
}

// PresentationRefresh is told when a mobile's skills visibly changed
type PresentationRefresh interface {
	Notify(entityID string)
}

// MilestoneLog records skills crossing the milestone threshold
type MilestoneLog interface {
	Record(entityID string, skill entities.SkillName, newBase int)
}
