// Package notify publishes progression events on an rpg-toolkit event bus
package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Event types
const (
	EventRefresh   = "progression.refresh"
	EventMilestone = "progression.milestone"
)

// Event context keys
const (
	KeySkill = "skill"
	KeyBase  = "base"
)

// mobileRef stands in for a mobile as an event source
type mobileRef string

func (m mobileRef) GetID() string   { return string(m) }
func (m mobileRef) GetType() string { return "mobile" }

// Publisher turns engine callbacks into bus events
type Publisher struct {
	bus    events.EventBus
	logger *slog.Logger
}

var (
	_ engine.PresentationRefresh = (*Publisher)(nil)
	_ engine.MilestoneLog        = (*Publisher)(nil)
)

// Config configures a Publisher
type Config struct {
	Bus    events.EventBus
	Logger *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// New creates a Publisher
func New(cfg *Config) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid notify config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{bus: cfg.Bus, logger: logger}, nil
}

// Notify publishes a refresh event for the entity
func (p *Publisher) Notify(entityID string) {
	p.publish(events.NewGameEvent(EventRefresh, mobileRef(entityID), nil))
}

// Record publishes a milestone event for the entity
func (p *Publisher) Record(entityID string, skill entities.SkillName, newBase int) {
	evt := events.NewGameEvent(EventMilestone, mobileRef(entityID), nil)
	evt.Context().Set(KeySkill, skill.String())
	evt.Context().Set(KeyBase, newBase)
	p.publish(evt)
}

// Handlers run synchronously on the caller's goroutine; a failing handler is
// logged and never reaches the engine.
func (p *Publisher) publish(evt events.Event) {
	if err := p.bus.Publish(context.Background(), evt); err != nil {
		p.logger.Warn("failed to publish progression event",
			"event", evt.Type(),
			"entity_id", evt.Source().GetID(),
			"error", err)
	}
}

// Subscribe attaches logging handlers for progression events and returns
// their subscription IDs
func Subscribe(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	milestone := bus.SubscribeFunc(EventMilestone, 0, func(_ context.Context, e events.Event) error {
		skill, _ := e.Context().Get(KeySkill)
		base, _ := e.Context().Get(KeyBase)
		logger.Info("skill milestone reached",
			"entity_id", e.Source().GetID(),
			"skill", skill,
			"base", base)
		return nil
	})

	refresh := bus.SubscribeFunc(EventRefresh, 0, func(_ context.Context, e events.Event) error {
		logger.Debug("skills refreshed", "entity_id", e.Source().GetID())
		return nil
	})

	return []string{milestone, refresh}
}
