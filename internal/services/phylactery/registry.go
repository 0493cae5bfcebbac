// Package phylactery tracks the phylacteries soul-bound characters carry
package phylactery

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Phylactery is the soul vessel of a soul-bound character
type Phylactery = entities.Phylactery

// Validate checks the phylactery's powers
func Validate(p Phylactery) error {
	vb := errors.NewValidationBuilder()
	if p.SkillGainBonus < 0 {
		vb.Field("SkillGainBonus", "must not be negative")
	}
	if p.CooldownScale < 0 {
		vb.Field("CooldownScale", "must not be negative")
	}
	return vb.Build()
}

// Registry is an in-memory table of equipped phylacteries
type Registry struct {
	mu       sync.RWMutex
	equipped map[string]Phylactery
}

var _ engine.PhylacteryModifier = (*Registry)(nil)

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{equipped: make(map[string]Phylactery)}
}

// Equip binds p to the entity, replacing any previous one
func (r *Registry) Equip(entityID string, p Phylactery) error {
	if entityID == "" {
		return errors.InvalidArgument("entity ID is required")
	}
	if err := Validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.equipped[entityID] = p
	return nil
}

// Unequip removes the entity's phylactery
func (r *Registry) Unequip(entityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.equipped, entityID)
}

// Sync makes the registry match the phylactery stored on the mobile
func (r *Registry) Sync(m *entities.Mobile) error {
	if m == nil || m.ID == "" {
		return errors.InvalidArgument("mobile with an ID is required")
	}
	if m.Context.Phylactery == nil {
		r.Unequip(m.ID)
		return nil
	}
	return r.Equip(m.ID, *m.Context.Phylactery)
}

// Get returns the entity's phylactery
func (r *Registry) Get(entityID string) (Phylactery, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.equipped[entityID]
	return p, ok
}

// SkillGainBonus is the additive gain bonus, 0 without a phylactery
func (r *Registry) SkillGainBonus(entityID string) float64 {
	p, _ := r.Get(entityID)
	return p.SkillGainBonus
}

// StatCooldownScale shortens or lengthens the stat gain cooldown
func (r *Registry) StatCooldownScale(entityID string, base time.Duration) time.Duration {
	p, ok := r.Get(entityID)
	if !ok || p.CooldownScale == 0 {
		return base
	}
	return time.Duration(float64(base) * p.CooldownScale)
}
