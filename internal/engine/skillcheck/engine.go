// Package skillcheck implements the progression engine: skill check trials,
// gain chance composition, the banded skill ledger and attribute gains.
//
// An Engine is synchronous and performs no I/O. It mutates the Mobile it is
// handed, so callers must serialize access per mobile. All randomness flows
// through the configured rng.Source.
package skillcheck

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/rng"
)

// BonusHook returns a multiplier applied to a skill's gain chance
type BonusHook func(m *entities.Mobile, target *entities.Target) float64

// GainGate reports whether a gain attempt for the skill may proceed
type GainGate func(m *entities.Mobile, skill *entities.Skill) bool

// Config configures an Engine. Tuning, Rand and Clock are required; the
// collaborators default to neutral implementations.
type Config struct {
	Tuning *config.Tuning
	Rand   rng.Source
	Clock  clock.Clock

	GuildSkills entities.GuildSkillTable
	BonusHooks  map[entities.SkillName]BonusHook
	GainGates   map[entities.SkillName]GainGate

	AntiMacro  engine.AntiMacroGate
	Phylactery engine.PhylacteryModifier
	Regions    engine.RegionLookup
	Refresh    engine.PresentationRefresh
	Milestones engine.MilestoneLog

	Logger *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tuning == nil {
		vb.RequiredField("Tuning")
	}
	if c.Rand == nil {
		vb.RequiredField("Rand")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Tuning != nil && c.Tuning.AntiMacro.Enabled && c.AntiMacro == nil {
		vb.Field("AntiMacro", "is required when anti-macro is enabled")
	}

	if err := vb.Build(); err != nil {
		return err
	}
	return c.Tuning.Validate()
}

// Engine is the concrete progression engine
type Engine struct {
	tuning *config.Tuning
	rand   rng.Source
	clock  clock.Clock

	guildSkills entities.GuildSkillTable
	bonusHooks  map[entities.SkillName]BonusHook
	gainGates   map[entities.SkillName]GainGate
	macroSkills map[entities.SkillName]bool
	meditative  map[entities.SkillName]bool

	antiMacro  engine.AntiMacroGate
	phylactery engine.PhylacteryModifier
	regions    engine.RegionLookup
	refresh    engine.PresentationRefresh
	milestones engine.MilestoneLog

	logger *slog.Logger
}

var _ engine.Engine = (*Engine)(nil)

// New creates an Engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	e := &Engine{
		tuning:      cfg.Tuning,
		rand:        cfg.Rand,
		clock:       cfg.Clock,
		guildSkills: cfg.GuildSkills,
		bonusHooks:  cfg.BonusHooks,
		gainGates:   cfg.GainGates,
		antiMacro:   cfg.AntiMacro,
		phylactery:  cfg.Phylactery,
		regions:     cfg.Regions,
		refresh:     cfg.Refresh,
		milestones:  cfg.Milestones,
		logger:      cfg.Logger,
		macroSkills: skillFlags(cfg.Tuning.AntiMacro.Skills),
		meditative:  skillFlags(cfg.Tuning.Ledger.Meditative),
	}

	if e.guildSkills == nil {
		e.guildSkills = entities.DefaultGuildSkills()
	}
	if e.bonusHooks == nil {
		e.bonusHooks = DefaultBonusHooks(&cfg.Tuning.Gain)
	}
	if e.gainGates == nil {
		e.gainGates = DefaultGainGates(&cfg.Tuning.Gain)
	}
	if e.phylactery == nil {
		e.phylactery = noPhylactery{}
	}
	if e.regions == nil {
		e.regions = noRegions{}
	}
	if e.refresh == nil {
		e.refresh = noRefresh{}
	}
	if e.milestones == nil {
		e.milestones = noMilestones{}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e, nil
}

// DefaultBonusHooks returns the stock skill-specific gain bonuses
func DefaultBonusHooks(t *config.GainTuning) map[entities.SkillName]BonusHook {
	wild := t.AnimalLoreWildBonus
	return map[entities.SkillName]BonusHook{
		entities.AnimalLore: func(_ *entities.Mobile, target *entities.Target) float64 {
			if target != nil && target.Creature && !target.Controlled && !target.VendorBought {
				return wild
			}
			return 1
		},
	}
}

// DefaultGainGates returns the stock gain preconditions
func DefaultGainGates(t *config.GainTuning) map[entities.SkillName]GainGate {
	boatBase := t.FishingBoatBase
	return map[entities.SkillName]GainGate{
		entities.Fishing: func(m *entities.Mobile, skill *entities.Skill) bool {
			return skill.Base < boatBase || m.Context.OnBoat
		},
	}
}

func skillFlags(names []entities.SkillName) map[entities.SkillName]bool {
	out := make(map[entities.SkillName]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

func mustMobile(m *entities.Mobile) {
	if m == nil || m.Skills == nil || m.Stats == nil {
		errors.Violation("skillcheck: mobile with skills and stats is required")
	}
}

type noPhylactery struct{}

func (noPhylactery) SkillGainBonus(string) float64 { return 0 }

func (noPhylactery) StatCooldownScale(_ string, base time.Duration) time.Duration { return base }

type noRegions struct{}

func (noRegions) DifficultyLevel(entities.Location) float64 { return 0 }

func (noRegions) Classify(entities.Location) engine.RegionClass {
	return engine.RegionClass{Kind: engine.RegionNone}
}

type noRefresh struct{}

func (noRefresh) Notify(string) {}

type noMilestones struct{}

func (noMilestones) Record(string, entities.SkillName, int) {}
