package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// MacroKey identifies the context of a repeated action: a coarse location
// bucket for location checks, or the target's id for targeted checks.
type MacroKey struct {
	TargetID string
	X        int
	Y        int
}

// LocationKey buckets a world position into cells of the given size
func LocationKey(x, y, cellSize int) MacroKey {
	return MacroKey{X: x / cellSize, Y: y / cellSize}
}

// TargetKey keys a repeated action by its target
func TargetKey(targetID string) MacroKey {
	return MacroKey{TargetID: targetID}
}

func (k MacroKey) String() string {
	if k.TargetID != "" {
		return "target:" + k.TargetID
	}
	return fmt.Sprintf("loc:%d,%d", k.X, k.Y)
}

// RegionKind is the coarse classification of a world location
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionDungeon
	RegionNamed
	RegionRectangle
)

var regionKindNames = [...]string{"none", "dungeon", "named", "rectangle"}

func (k RegionKind) String() string {
	if k < 0 || int(k) >= len(regionKindNames) {
		return fmt.Sprintf("RegionKind(%d)", int(k))
	}
	return regionKindNames[k]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *RegionKind) UnmarshalText(text []byte) error {
	for i, name := range regionKindNames {
		if strings.EqualFold(name, string(text)) {
			*k = RegionKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown region kind %q", string(text))
}

// Ruleset selects the skill gain curve
type Ruleset int

const (
	RulesetNormal Ruleset = iota
	RulesetAlternate
)

var rulesetNames = [...]string{"normal", "alternate"}

func (r Ruleset) String() string {
	if r < 0 || int(r) >= len(rulesetNames) {
		return fmt.Sprintf("Ruleset(%d)", int(r))
	}
	return rulesetNames[r]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Ruleset) UnmarshalText(text []byte) error {
	for i, name := range rulesetNames {
		if strings.EqualFold(name, string(text)) {
			*r = Ruleset(i)
			return nil
		}
	}
	return fmt.Errorf("unknown ruleset %q", string(text))
}

// RegionClass is the typed result of classifying a location
type RegionClass struct {
	Kind        RegionKind
	Name        string
	ZoneID      string
	NoSkillGain bool
	Ruleset     Ruleset
}

// Difficulty describes how hard a check is: either a skill band or a direct probability
type Difficulty struct {
	MinSkill float64
	MaxSkill float64
	Chance   float64
	Direct   bool
}

// Band is a check whose chance scales linearly from minSkill to maxSkill
func Band(minSkill, maxSkill float64) Difficulty {
	return Difficulty{MinSkill: minSkill, MaxSkill: maxSkill}
}

// DirectChance is a check with a fixed success probability
func DirectChance(p float64) Difficulty {
	return Difficulty{Chance: p, Direct: true}
}

// CheckLocationInput is a skill use keyed by where the mobile stands
type CheckLocationInput struct {
	Mobile     *entities.Mobile
	Skill      entities.SkillName
	Difficulty Difficulty
}

// CheckTargetInput is a skill use against a target
type CheckTargetInput struct {
	Mobile     *entities.Mobile
	Skill      entities.SkillName
	Target     *entities.Target
	Difficulty Difficulty
}

// CheckOutput reports the outcome of a skill check
type CheckOutput struct {
	// Success is the result handed back to the caller
	Success bool
	// Attempted is false when no trial was rolled
	Attempted bool
	Chance    float64
	// GainChance is zero when no trial was rolled
	GainChance float64
	// Rescued is set when a failed trial was flipped by a stimulant
	Rescued bool

	// Gain is nil when no gain was attempted
	Gain       *GainResult
	StatRaised bool
	Stat       entities.Stat
}

// GainOutcome explains what a gain attempt did
type GainOutcome int

const (
	GainRaised GainOutcome = iota
	GainNoSkillGainRegion
	GainDeadPet
	GainMetaSkillNonPlayer
	GainLockedOrCapped
	GainRolledZero
	GainOverTotalCap
	GainGated
)

var gainOutcomeNames = [...]string{
	"raised", "no_skill_gain_region", "dead_pet", "meta_skill_non_player",
	"locked_or_capped", "rolled_zero", "over_total_cap", "gated",
}

func (o GainOutcome) String() string {
	if o < 0 || int(o) >= len(gainOutcomeNames) {
		return fmt.Sprintf("GainOutcome(%d)", int(o))
	}
	return gainOutcomeNames[o]
}

// GainResult describes a single gain attempt
type GainResult struct {
	Outcome GainOutcome
	// Amount is the committed increase in fixed-point tenths
	Amount  int
	NewBase int

	// Lowered is set when another skill was reduced to make room
	Lowered      bool
	LoweredSkill entities.SkillName
	Milestone    bool
}

// Raised reports whether the skill's base went up
func (r *GainResult) Raised() bool {
	return r != nil && r.Outcome == GainRaised && r.Amount > 0
}
