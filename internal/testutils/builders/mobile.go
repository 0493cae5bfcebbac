// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// MobileBuilder provides a fluent interface for building test Mobile instances
type MobileBuilder struct {
	mobile *entities.Mobile
}

// NewMobileBuilder creates a live player with every skill at zero and locked Up,
// a 7000 total skill cap, 1000 per skill, and stats 50/50/50 under a 225 cap
func NewMobileBuilder() *MobileBuilder {
	return &MobileBuilder{
		mobile: &entities.Mobile{
			ID:     "mobile-test",
			Name:   "Test Mobile",
			Kind:   entities.KindPlayer,
			Alive:  true,
			Skills: entities.NewSkillSet(7000, 1000),
			Stats:  entities.NewAttributes(50, 50, 50, 225),
		},
	}
}

// WithID sets the mobile ID
func (b *MobileBuilder) WithID(id string) *MobileBuilder {
	b.mobile.ID = id
	return b
}

// WithName sets the mobile name
func (b *MobileBuilder) WithName(name string) *MobileBuilder {
	b.mobile.Name = name
	return b
}

// WithKind sets player, pet or creature
func (b *MobileBuilder) WithKind(kind entities.Kind) *MobileBuilder {
	b.mobile.Kind = kind
	return b
}

// WithSkillCaps replaces the skill set with an empty one under the given caps
func (b *MobileBuilder) WithSkillCaps(totalCap, perSkillCap int) *MobileBuilder {
	b.mobile.Skills = entities.NewSkillSet(totalCap, perSkillCap)
	return b
}

// WithSkill sets a skill's base in tenths, unclamped so tests can build
// states the engine itself would never produce
func (b *MobileBuilder) WithSkill(name entities.SkillName, base int) *MobileBuilder {
	b.mobile.Skills.Get(name).Base = base
	return b
}

// WithSkillLock sets the lock on a skill
func (b *MobileBuilder) WithSkillLock(name entities.SkillName, lock entities.Lock) *MobileBuilder {
	b.mobile.Skills.Get(name).Lock = lock
	return b
}

// WithStats replaces the attributes
func (b *MobileBuilder) WithStats(str, dex, intel, statCap int) *MobileBuilder {
	b.mobile.Stats = entities.NewAttributes(str, dex, intel, statCap)
	return b
}

// WithStatLock sets the lock on a stat
func (b *MobileBuilder) WithStatLock(stat entities.Stat, lock entities.Lock) *MobileBuilder {
	b.mobile.Stats.SetLock(stat, lock)
	return b
}

// WithHunger sets the food level
func (b *MobileBuilder) WithHunger(hunger int) *MobileBuilder {
	b.mobile.Context.Hunger = hunger
	return b
}

// WithLocation places the mobile
func (b *MobileBuilder) WithLocation(mapName string, x, y int) *MobileBuilder {
	b.mobile.Context.Location = entities.Location{Map: mapName, X: x, Y: y}
	return b
}

// WithNPCGuild joins an NPC guild
func (b *MobileBuilder) WithNPCGuild(g entities.NPCGuild) *MobileBuilder {
	b.mobile.Context.NPCGuild = g
	return b
}

// WithAlacrity accelerates a skill until the given time
func (b *MobileBuilder) WithAlacrity(name entities.SkillName, until time.Time) *MobileBuilder {
	b.mobile.Context.AcceleratedSkill = name
	b.mobile.Context.AcceleratedUntil = until
	return b
}

// WithTimestamps sets creation and update times
func (b *MobileBuilder) WithTimestamps(t time.Time) *MobileBuilder {
	b.mobile.CreatedAt = t
	b.mobile.UpdatedAt = t
	return b
}

// Dead marks the mobile as dead
func (b *MobileBuilder) Dead() *MobileBuilder {
	b.mobile.Alive = false
	return b
}

// Build returns the built mobile
func (b *MobileBuilder) Build() *entities.Mobile {
	return b.mobile
}
