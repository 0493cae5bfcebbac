// Package progression implements the progression orchestrator: it loads a
// mobile, runs the engine against it and saves the result, one writer per
// mobile at a time.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
)

// Service defines the interface for progression operations
type Service interface {
	// Mobile lifecycle
	CreateMobile(ctx context.Context, input *CreateMobileInput) (*CreateMobileOutput, error)
	GetMobile(ctx context.Context, input *GetMobileInput) (*GetMobileOutput, error)
	ListMobiles(ctx context.Context, input *ListMobilesInput) (*ListMobilesOutput, error)
	DeleteMobile(ctx context.Context, input *DeleteMobileInput) (*DeleteMobileOutput, error)

	// Progression
	UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error)
	SetSkillLock(ctx context.Context, input *SetSkillLockInput) (*SetSkillLockOutput, error)
	SetStatLock(ctx context.Context, input *SetStatLockInput) (*SetStatLockOutput, error)
	UpdateContext(ctx context.Context, input *UpdateContextInput) (*UpdateContextOutput, error)
	EquipPhylactery(ctx context.Context, input *EquipPhylacteryInput) (*EquipPhylacteryOutput, error)
}

// PhylacteryBinder is the engine-facing phylactery table. The orchestrator
// keeps it in step with the phylactery stored on each mobile it loads.
type PhylacteryBinder interface {
	Sync(m *entities.Mobile) error
	Unequip(entityID string)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	Repository  progressionrepo.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	// Phylacteries is optional; without it stored phylacteries are not
	// exposed to the engine
	Phylacteries PhylacteryBinder
	Logger       *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         progressionrepo.Repository
	engine       engine.Engine
	idGen        idgen.Generator
	phylacteries PhylacteryBinder
	logger       *slog.Logger
	locks        *keyedMutex
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		repo:         cfg.Repository,
		engine:       cfg.Engine,
		idGen:        cfg.IDGenerator,
		phylacteries: cfg.Phylacteries,
		logger:       logger,
		locks:        newKeyedMutex(),
	}, nil
}

// CreateMobile builds a mobile with every skill locked Up and stores it
func (o *orchestrator) CreateMobile(ctx context.Context, input *CreateMobileInput) (*CreateMobileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.Kind < entities.KindPlayer || input.Kind > entities.KindCreature {
		vb.Fieldf("Kind", "unknown kind %d", int(input.Kind))
	}
	if input.SkillCap < 0 || input.PerSkillCap < 0 || input.StatCap < 0 {
		vb.Field("Caps", "must not be negative")
	}
	for name, base := range input.Skills {
		if !name.Valid() {
			vb.Fieldf("Skills", "unknown skill id %d", int(name))
		} else if base < 0 {
			vb.Fieldf("Skills", "%s base must not be negative", name)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := validatePhylactery(input.Context.Phylactery); err != nil {
		return nil, err
	}

	skills := entities.NewSkillSet(
		orDefault(input.SkillCap, DefaultSkillCap),
		orDefault(input.PerSkillCap, DefaultPerSkillCap),
	)
	for name, base := range input.Skills {
		skills.Get(name).SetBase(base)
	}
	if input.Kind == entities.KindPlayer && skills.Total() > skills.Cap {
		return nil, errors.InvalidArgumentf("starting skills total %d exceeds cap %d", skills.Total(), skills.Cap)
	}

	m := &entities.Mobile{
		ID:      o.idGen.Generate(),
		Name:    input.Name,
		Kind:    input.Kind,
		Alive:   true,
		Skills:  skills,
		Stats:   entities.NewAttributes(input.Str, input.Dex, input.Int, orDefault(input.StatCap, DefaultStatCap)),
		Context: input.Context,
	}

	out, err := o.repo.Create(ctx, progressionrepo.CreateInput{Mobile: m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mobile")
	}
	if err := o.syncPhylactery(out.Mobile); err != nil {
		return nil, err
	}

	o.logger.Info("Mobile created",
		"entity_id", m.ID,
		"name", m.Name,
		"kind", m.Kind.String(),
		"skill_total", m.Skills.Total(),
	)

	return &CreateMobileOutput{Mobile: out.Mobile}, nil
}

// GetMobile loads a mobile
func (o *orchestrator) GetMobile(ctx context.Context, input *GetMobileInput) (*GetMobileOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}

	out, err := o.repo.Get(ctx, progressionrepo.GetInput{ID: input.MobileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mobile")
	}

	return &GetMobileOutput{Mobile: out.Mobile}, nil
}

// ListMobiles lists stored mobiles
func (o *orchestrator) ListMobiles(ctx context.Context, input *ListMobilesInput) (*ListMobilesOutput, error) {
	if input == nil {
		input = &ListMobilesInput{}
	}

	out, err := o.repo.List(ctx, progressionrepo.ListInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mobiles")
	}

	return &ListMobilesOutput{Mobiles: out.Mobiles}, nil
}

// DeleteMobile removes a mobile
func (o *orchestrator) DeleteMobile(ctx context.Context, input *DeleteMobileInput) (*DeleteMobileOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}

	unlock := o.locks.Lock(input.MobileID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, progressionrepo.DeleteInput{ID: input.MobileID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete mobile")
	}
	if o.phylacteries != nil {
		o.phylacteries.Unequip(input.MobileID)
	}

	o.logger.Info("Mobile deleted", "entity_id", input.MobileID)

	return &DeleteMobileOutput{}, nil
}

// UseSkill resolves one skill use against the stored mobile and persists
// whatever the engine changed
func (o *orchestrator) UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill id %d", int(input.Skill))
	}
	if input.Target != nil && input.Target.ID == "" {
		return nil, errors.InvalidArgument("target ID is required")
	}

	var check *engine.CheckOutput
	m, err := o.mutate(ctx, input.MobileID, func(m *entities.Mobile) error {
		if input.Target != nil {
			check = o.engine.CheckTarget(&engine.CheckTargetInput{
				Mobile:     m,
				Skill:      input.Skill,
				Target:     input.Target,
				Difficulty: input.Difficulty,
			})
		} else {
			check = o.engine.CheckLocation(&engine.CheckLocationInput{
				Mobile:     m,
				Skill:      input.Skill,
				Difficulty: input.Difficulty,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"entity_id", m.ID,
		"skill", input.Skill.String(),
		"success", check.Success,
		"base", m.Skills.Get(input.Skill).Base,
	}
	if check.Gain != nil {
		attrs = append(attrs, "gain", check.Gain.Outcome.String(), "amount", check.Gain.Amount)
	}
	if check.StatRaised {
		attrs = append(attrs, "stat_raised", check.Stat.String())
	}
	o.logger.Info("Skill used", attrs...)

	return &UseSkillOutput{Check: check, Mobile: m}, nil
}

// SetSkillLock changes the lock on one skill
func (o *orchestrator) SetSkillLock(ctx context.Context, input *SetSkillLockInput) (*SetSkillLockOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill id %d", int(input.Skill))
	}
	if err := validateLock(input.Lock); err != nil {
		return nil, err
	}

	m, err := o.mutate(ctx, input.MobileID, func(m *entities.Mobile) error {
		m.Skills.Get(input.Skill).Lock = input.Lock
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Skill lock changed",
		"entity_id", m.ID,
		"skill", input.Skill.String(),
		"lock", input.Lock.String(),
	)

	return &SetSkillLockOutput{Mobile: m}, nil
}

// SetStatLock changes the lock on one stat
func (o *orchestrator) SetStatLock(ctx context.Context, input *SetStatLockInput) (*SetStatLockOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}
	if !input.Stat.Valid() {
		return nil, errors.InvalidArgumentf("unknown stat %d", int(input.Stat))
	}
	if err := validateLock(input.Lock); err != nil {
		return nil, err
	}

	m, err := o.mutate(ctx, input.MobileID, func(m *entities.Mobile) error {
		m.Stats.SetLock(input.Stat, input.Lock)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Stat lock changed",
		"entity_id", m.ID,
		"stat", input.Stat.String(),
		"lock", input.Lock.String(),
	)

	return &SetStatLockOutput{Mobile: m}, nil
}

// UpdateContext replaces the situational state the engine reads. The
// equipped phylactery is kept; EquipPhylactery changes it.
func (o *orchestrator) UpdateContext(ctx context.Context, input *UpdateContextInput) (*UpdateContextOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}
	if input.Context.Hunger < 0 {
		return nil, errors.InvalidArgument("hunger must not be negative")
	}

	m, err := o.mutate(ctx, input.MobileID, func(m *entities.Mobile) error {
		phylactery := m.Context.Phylactery
		m.Context = input.Context
		m.Context.Phylactery = phylactery
		if input.Alive != nil {
			m.Alive = *input.Alive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Mobile context updated",
		"entity_id", m.ID,
		"map", m.Context.Location.Map,
		"x", m.Context.Location.X,
		"y", m.Context.Location.Y,
	)

	return &UpdateContextOutput{Mobile: m}, nil
}

// EquipPhylactery stores the mobile's phylactery. A nil phylactery removes it.
func (o *orchestrator) EquipPhylactery(ctx context.Context, input *EquipPhylacteryInput) (*EquipPhylacteryOutput, error) {
	if input == nil || input.MobileID == "" {
		return nil, errors.InvalidArgument("mobile ID is required")
	}
	if err := validatePhylactery(input.Phylactery); err != nil {
		return nil, err
	}

	m, err := o.mutate(ctx, input.MobileID, func(m *entities.Mobile) error {
		if input.Phylactery == nil {
			m.Context.Phylactery = nil
			return nil
		}
		p := *input.Phylactery
		m.Context.Phylactery = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{"entity_id", m.ID, "equipped", m.Context.Phylactery != nil, "soul_bound", m.Context.SoulBound}
	if p := m.Context.Phylactery; p != nil {
		attrs = append(attrs, "skill_gain_bonus", p.SkillGainBonus, "cooldown_scale", p.CooldownScale)
	}
	o.logger.Info("Phylactery changed", attrs...)

	return &EquipPhylacteryOutput{Mobile: m}, nil
}

// mutate runs fn against the stored mobile under the mobile's lock and
// saves the result
func (o *orchestrator) mutate(ctx context.Context, id string, fn func(*entities.Mobile) error) (*entities.Mobile, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	got, err := o.repo.Get(ctx, progressionrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mobile")
	}

	m := got.Mobile
	if err := o.syncPhylactery(m); err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		return nil, err
	}

	updated, err := o.repo.Update(ctx, progressionrepo.UpdateInput{Mobile: m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save mobile")
	}
	if err := o.syncPhylactery(updated.Mobile); err != nil {
		return nil, err
	}

	return updated.Mobile, nil
}

func (o *orchestrator) syncPhylactery(m *entities.Mobile) error {
	if o.phylacteries == nil {
		return nil
	}
	if err := o.phylacteries.Sync(m); err != nil {
		return errors.Wrap(err, "failed to bind phylactery")
	}
	return nil
}

func validatePhylactery(p *entities.Phylactery) error {
	if p == nil {
		return nil
	}
	vb := errors.NewValidationBuilder()
	if p.SkillGainBonus < 0 {
		vb.Field("Phylactery.SkillGainBonus", "must not be negative")
	}
	if p.CooldownScale < 0 {
		vb.Field("Phylactery.CooldownScale", "must not be negative")
	}
	return vb.Build()
}

func validateLock(l entities.Lock) error {
	switch l {
	case entities.LockUp, entities.LockDown, entities.LockLocked:
		return nil
	}
	return errors.InvalidArgumentf("unknown lock %d", int(l))
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
