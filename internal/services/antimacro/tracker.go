// Package antimacro throttles skill gain from repeating the same action in the same place
package antimacro

import (
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

type entryKey struct {
	entityID string
	skill    entities.SkillName
	key      engine.MacroKey
}

type entry struct {
	count    int
	lastUsed time.Time
}

// DefaultSweepEvery is how many uses pass between sweeps of expired entries
const DefaultSweepEvery = 1024

// Tracker counts uses per entity, skill and context. Every use restamps the
// entry, so a context stays throttled until it has been left alone for Expire.
type Tracker struct {
	mu         sync.Mutex
	entries    map[entryKey]*entry
	clock      clock.Clock
	allowance  int
	expire     time.Duration
	sweepEvery int
	sinceSweep int
	logger     *slog.Logger
}

var _ engine.AntiMacroGate = (*Tracker)(nil)

// Config configures a Tracker
type Config struct {
	Clock     clock.Clock
	Allowance int
	Expire    time.Duration
	// SweepEvery is the number of uses between sweeps of expired entries;
	// zero selects DefaultSweepEvery
	SweepEvery int
	Logger     *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidatePositive("Allowance", c.Allowance, vb)
	if c.Expire <= 0 {
		vb.Field("Expire", "must be positive")
	}
	if c.SweepEvery < 0 {
		vb.Field("SweepEvery", "must not be negative")
	}
	return vb.Build()
}

// New creates a Tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid anti-macro config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sweepEvery := cfg.SweepEvery
	if sweepEvery == 0 {
		sweepEvery = DefaultSweepEvery
	}

	return &Tracker{
		entries:    make(map[entryKey]*entry),
		clock:      cfg.Clock,
		allowance:  cfg.Allowance,
		expire:     cfg.Expire,
		sweepEvery: sweepEvery,
		logger:     logger,
	}, nil
}

// Allow records a use and reports whether it may still produce a gain
func (t *Tracker) Allow(entityID string, skill entities.SkillName, key engine.MacroKey) bool {
	now := t.clock.Now()
	k := entryKey{entityID: entityID, skill: skill, key: key}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sinceSweep++
	if t.sinceSweep >= t.sweepEvery {
		t.sinceSweep = 0
		if removed := t.pruneLocked(now); removed > 0 {
			t.logger.Debug("anti-macro swept expired entries", "removed", removed, "remaining", len(t.entries))
		}
	}

	e, ok := t.entries[k]
	if !ok {
		t.entries[k] = &entry{count: 1, lastUsed: now}
		return true
	}

	if !e.lastUsed.Add(t.expire).After(now) {
		e.count = 1
		e.lastUsed = now
		return true
	}

	e.count++
	e.lastUsed = now
	if e.count > t.allowance {
		t.logger.Debug("anti-macro refused gain",
			"entity_id", entityID,
			"skill", skill.String(),
			"context", key.String(),
			"count", e.count)
		return false
	}
	return true
}

// Prune drops entries that have expired and returns how many were removed
func (t *Tracker) Prune() int {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pruneLocked(now)
}

func (t *Tracker) pruneLocked(now time.Time) int {
	removed := 0
	for k, e := range t.entries {
		if !e.lastUsed.Add(t.expire).After(now) {
			delete(t.entries, k)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked contexts
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
