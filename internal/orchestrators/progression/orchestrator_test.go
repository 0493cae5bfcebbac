package progression

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-progression/internal/engine/mock"
	"github.com/KirkDiggler/rpg-progression/internal/engine/skillcheck"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	clockmock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/rpg-progression/internal/pkg/idgen/mock"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	repomock "github.com/KirkDiggler/rpg-progression/internal/repositories/progression/mock"
	"github.com/KirkDiggler/rpg-progression/internal/services/phylactery"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *repomock.MockRepository
	mockEngine *enginemock.MockEngine
	mockIDGen  *idgenmock.MockGenerator
	orch       Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	orch, err := NewOrchestrator(&Config{
		Repository:  s.mockRepo,
		Engine:      s.mockEngine,
		IDGenerator: s.mockIDGen,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// expectRoundTrip makes Get return m and Update echo whatever it is given
func (s *OrchestratorTestSuite) expectRoundTrip(m *entities.Mobile) {
	mocks.ExpectMobileGet(s.ctx, s.mockRepo, m.ID, m, nil)
	mocks.ExpectMobileUpdate(s.ctx, s.mockRepo)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidates() {
	_, err := NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewOrchestrator(&Config{Repository: s.mockRepo})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestCreateMobile() {
	s.mockIDGen.EXPECT().Generate().Return("mob-1")
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressionrepo.CreateInput) (*progressionrepo.CreateOutput, error) {
			m := input.Mobile
			s.Equal("mob-1", m.ID)
			s.Equal("Lord British", m.Name)
			s.True(m.Alive)
			s.Equal(450, m.Skills.Get(entities.Magery).Base)
			s.Equal(entities.LockUp, m.Skills.Get(entities.Magery).Lock)
			s.Equal(60, m.Stats.Get(entities.Int))
			s.Equal(entities.StatFloor, m.Stats.Get(entities.Str), "stats below the floor are raised")
			return &progressionrepo.CreateOutput{Mobile: m}, nil
		})

	out, err := s.orch.CreateMobile(s.ctx, &CreateMobileInput{
		Name:   "Lord British",
		Kind:   entities.KindPlayer,
		Str:    5,
		Dex:    40,
		Int:    60,
		Skills: map[entities.SkillName]int{entities.Magery: 450},
	})
	s.Require().NoError(err)
	s.Equal(DefaultSkillCap, out.Mobile.Skills.Cap)
	s.Equal(DefaultPerSkillCap, out.Mobile.Skills.Get(entities.Swords).Cap)
	s.Equal(DefaultStatCap, out.Mobile.Stats.Cap)
}

func (s *OrchestratorTestSuite) TestCreateMobileCustomCaps() {
	s.mockIDGen.EXPECT().Generate().Return("mob-2")
	mocks.ExpectMobileCreate(s.ctx, s.mockRepo)

	out, err := s.orch.CreateMobile(s.ctx, &CreateMobileInput{
		Name:        "a mongbat",
		Kind:        entities.KindCreature,
		SkillCap:    2000,
		PerSkillCap: 500,
		StatCap:     100,
		Skills:      map[entities.SkillName]int{entities.Wrestling: 900},
	})
	s.Require().NoError(err)
	s.Equal(2000, out.Mobile.Skills.Cap)
	s.Equal(500, out.Mobile.Skills.Get(entities.Wrestling).Base, "starting base is clamped to the skill cap")
	s.Equal(100, out.Mobile.Stats.Cap)
	s.Equal(testutils.TestEpoch, out.Mobile.CreatedAt)
}

func (s *OrchestratorTestSuite) TestCreateMobileRejectsBadInput() {
	testCases := []struct {
		name  string
		input *CreateMobileInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &CreateMobileInput{}},
		{name: "unknown kind", input: &CreateMobileInput{Name: "x", Kind: entities.Kind(9)}},
		{name: "negative cap", input: &CreateMobileInput{Name: "x", SkillCap: -1}},
		{name: "unknown skill", input: &CreateMobileInput{
			Name:   "x",
			Skills: map[entities.SkillName]int{entities.SkillName(-3): 10},
		}},
		{name: "negative base", input: &CreateMobileInput{
			Name:   "x",
			Skills: map[entities.SkillName]int{entities.Swords: -10},
		}},
		{name: "player over total cap", input: &CreateMobileInput{
			Name:     "x",
			Kind:     entities.KindPlayer,
			SkillCap: 1000,
			Skills:   map[entities.SkillName]int{entities.Swords: 800, entities.Parry: 800},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.CreateMobile(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateMobileRepositoryError() {
	s.mockIDGen.EXPECT().Generate().Return(testutils.TestPlayerID)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Newf(errors.CodeAlreadyExists, "mobile with ID %s already exists", testutils.TestPlayerID))

	_, err := s.orch.CreateMobile(s.ctx, &CreateMobileInput{Name: "dup"})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestGetMobile() {
	m := testutils.CreateTestPlayer()
	s.mockRepo.EXPECT().
		Get(s.ctx, progressionrepo.GetInput{ID: m.ID}).
		Return(&progressionrepo.GetOutput{Mobile: m}, nil)

	out, err := s.orch.GetMobile(s.ctx, &GetMobileInput{MobileID: m.ID})
	s.Require().NoError(err)
	s.Same(m, out.Mobile)

	_, err = s.orch.GetMobile(s.ctx, &GetMobileInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetMobileNotFound() {
	mocks.ExpectMobileGet(s.ctx, s.mockRepo, "nobody", nil, errors.NotFound("mobile with ID nobody not found"))

	_, err := s.orch.GetMobile(s.ctx, &GetMobileInput{MobileID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListMobiles() {
	pet := entities.KindPet
	s.mockRepo.EXPECT().
		List(s.ctx, progressionrepo.ListInput{Kind: &pet}).
		Return(&progressionrepo.ListOutput{Mobiles: []*entities.Mobile{testutils.CreateTestPet()}}, nil)

	out, err := s.orch.ListMobiles(s.ctx, &ListMobilesInput{Kind: &pet})
	s.Require().NoError(err)
	s.Len(out.Mobiles, 1)

	s.mockRepo.EXPECT().
		List(s.ctx, progressionrepo.ListInput{}).
		Return(&progressionrepo.ListOutput{}, nil)

	out, err = s.orch.ListMobiles(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(out.Mobiles)
}

func (s *OrchestratorTestSuite) TestDeleteMobile() {
	mocks.ExpectMobileDelete(s.ctx, s.mockRepo, testutils.TestPlayerID, nil)

	_, err := s.orch.DeleteMobile(s.ctx, &DeleteMobileInput{MobileID: testutils.TestPlayerID})
	s.Require().NoError(err)

	_, err = s.orch.DeleteMobile(s.ctx, &DeleteMobileInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUseSkillAtLocation() {
	m := builders.NewMobileBuilder().
		WithID("mob-swords").
		WithSkill(entities.Swords, 500).
		WithSkillLock(entities.Parry, entities.LockDown).
		Build()
	s.expectRoundTrip(m)

	s.mockEngine.EXPECT().
		CheckLocation(gomock.Any()).
		DoAndReturn(func(input *engine.CheckLocationInput) *engine.CheckOutput {
			s.Same(m, input.Mobile)
			s.Equal(entities.Swords, input.Skill)
			s.Equal(engine.Band(25, 75), input.Difficulty)

			input.Mobile.Skills.Get(entities.Swords).Base = 502
			return &engine.CheckOutput{
				Success:   true,
				Attempted: true,
				Gain:      &engine.GainResult{Outcome: engine.GainRaised, Amount: 2, NewBase: 502},
			}
		})

	out, err := s.orch.UseSkill(s.ctx, &UseSkillInput{
		MobileID:   m.ID,
		Skill:      entities.Swords,
		Difficulty: engine.Band(25, 75),
	})
	s.Require().NoError(err)
	s.True(out.Check.Success)
	s.True(out.Check.Gain.Raised())
	s.Equal(502, out.Mobile.Skills.Get(entities.Swords).Base)
}

func (s *OrchestratorTestSuite) TestUseSkillOnTarget() {
	m := testutils.CreateTestPlayer()
	target := &entities.Target{ID: "a-llama", Creature: true}
	s.expectRoundTrip(m)

	s.mockEngine.EXPECT().
		CheckTarget(gomock.Any()).
		DoAndReturn(func(input *engine.CheckTargetInput) *engine.CheckOutput {
			s.Same(target, input.Target)
			s.Equal(entities.AnimalLore, input.Skill)
			return &engine.CheckOutput{Attempted: true}
		})

	out, err := s.orch.UseSkill(s.ctx, &UseSkillInput{
		MobileID:   m.ID,
		Skill:      entities.AnimalLore,
		Difficulty: engine.Band(0, 100),
		Target:     target,
	})
	s.Require().NoError(err)
	s.False(out.Check.Success)
	s.Nil(out.Check.Gain)
}

func (s *OrchestratorTestSuite) TestUseSkillRejectsBadInput() {
	testCases := []struct {
		name  string
		input *UseSkillInput
	}{
		{name: "nil input", input: nil},
		{name: "missing mobile", input: &UseSkillInput{Skill: entities.Swords}},
		{name: "unknown skill", input: &UseSkillInput{MobileID: "m", Skill: entities.SkillName(999)}},
		{name: "target without id", input: &UseSkillInput{
			MobileID: "m",
			Skill:    entities.AnimalLore,
			Target:   &entities.Target{},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.UseSkill(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestUseSkillMissingMobileSkipsEngine() {
	mocks.ExpectMobileGet(s.ctx, s.mockRepo, "nobody", nil, errors.NotFound("mobile with ID nobody not found"))

	_, err := s.orch.UseSkill(s.ctx, &UseSkillInput{MobileID: "nobody", Skill: entities.Swords})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUseSkillSaveFailure() {
	m := testutils.CreateTestPlayer()
	s.mockRepo.EXPECT().
		Get(s.ctx, progressionrepo.GetInput{ID: m.ID}).
		Return(&progressionrepo.GetOutput{Mobile: m}, nil)
	s.mockEngine.EXPECT().CheckLocation(gomock.Any()).Return(&engine.CheckOutput{})
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("mobile with ID mobile-test-001 not found"))

	_, err := s.orch.UseSkill(s.ctx, &UseSkillInput{MobileID: m.ID, Skill: entities.Swords})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to save mobile")
}

func (s *OrchestratorTestSuite) TestSetSkillLock() {
	m := testutils.CreateTestPlayer()
	s.expectRoundTrip(m)

	out, err := s.orch.SetSkillLock(s.ctx, &SetSkillLockInput{
		MobileID: m.ID,
		Skill:    entities.Parry,
		Lock:     entities.LockDown,
	})
	s.Require().NoError(err)
	s.Equal(entities.LockDown, out.Mobile.Skills.Get(entities.Parry).Lock)

	_, err = s.orch.SetSkillLock(s.ctx, &SetSkillLockInput{
		MobileID: m.ID,
		Skill:    entities.Parry,
		Lock:     entities.Lock(7),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetStatLock() {
	m := testutils.CreateTestPlayer()
	s.expectRoundTrip(m)

	out, err := s.orch.SetStatLock(s.ctx, &SetStatLockInput{
		MobileID: m.ID,
		Stat:     entities.Dex,
		Lock:     entities.LockLocked,
	})
	s.Require().NoError(err)
	s.Equal(entities.LockLocked, out.Mobile.Stats.Lock(entities.Dex))

	_, err = s.orch.SetStatLock(s.ctx, &SetStatLockInput{MobileID: m.ID, Stat: entities.Stat(5)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateContext() {
	m := testutils.CreateTestPlayer()
	s.expectRoundTrip(m)

	dead := false
	ctx := entities.Context{
		Hunger:   5,
		OnBoat:   true,
		Location: entities.Location{Map: "Trammel", X: 1400, Y: 1600},
	}
	out, err := s.orch.UpdateContext(s.ctx, &UpdateContextInput{
		MobileID: m.ID,
		Context:  ctx,
		Alive:    &dead,
	})
	s.Require().NoError(err)
	s.Equal(ctx, out.Mobile.Context)
	s.False(out.Mobile.Alive)

	_, err = s.orch.UpdateContext(s.ctx, &UpdateContextInput{
		MobileID: m.ID,
		Context:  entities.Context{Hunger: -1},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateContextKeepsAliveWhenUnset() {
	m := testutils.CreateTestPlayer()
	s.expectRoundTrip(m)

	out, err := s.orch.UpdateContext(s.ctx, &UpdateContextInput{MobileID: m.ID})
	s.Require().NoError(err)
	s.True(out.Mobile.Alive)
}

func (s *OrchestratorTestSuite) newBoundOrchestrator() (Service, *phylactery.Registry) {
	registry := phylactery.NewRegistry()
	orch, err := NewOrchestrator(&Config{
		Repository:   s.mockRepo,
		Engine:       s.mockEngine,
		IDGenerator:  s.mockIDGen,
		Phylacteries: registry,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	return orch, registry
}

func (s *OrchestratorTestSuite) TestEquipPhylactery() {
	orch, registry := s.newBoundOrchestrator()
	m := builders.NewMobileBuilder().WithID("soul-1").Build()
	m.Context.SoulBound = true

	s.expectRoundTrip(m)
	out, err := orch.EquipPhylactery(s.ctx, &EquipPhylacteryInput{
		MobileID:   m.ID,
		Phylactery: &entities.Phylactery{SkillGainBonus: 0.25, CooldownScale: 0.5},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Mobile.Context.Phylactery)
	s.Equal(0.25, out.Mobile.Context.Phylactery.SkillGainBonus)
	s.Equal(0.25, registry.SkillGainBonus(m.ID))
	s.Equal(7*time.Minute+30*time.Second, registry.StatCooldownScale(m.ID, 15*time.Minute))

	s.expectRoundTrip(m)
	out, err = orch.EquipPhylactery(s.ctx, &EquipPhylacteryInput{MobileID: m.ID})
	s.Require().NoError(err)
	s.Nil(out.Mobile.Context.Phylactery)
	_, ok := registry.Get(m.ID)
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestEquipPhylacteryRejectsBadInput() {
	orch, _ := s.newBoundOrchestrator()

	_, err := orch.EquipPhylactery(s.ctx, &EquipPhylacteryInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = orch.EquipPhylactery(s.ctx, &EquipPhylacteryInput{
		MobileID:   "soul-1",
		Phylactery: &entities.Phylactery{SkillGainBonus: -0.1},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestLoadedPhylacteryReachesRegistry() {
	orch, registry := s.newBoundOrchestrator()
	m := builders.NewMobileBuilder().WithID("soul-2").Build()
	m.Context.Phylactery = &entities.Phylactery{SkillGainBonus: 0.4}

	mocks.ExpectMobileGet(s.ctx, s.mockRepo, m.ID, m, nil)
	s.mockEngine.EXPECT().
		CheckLocation(gomock.Any()).
		DoAndReturn(func(*engine.CheckLocationInput) *engine.CheckOutput {
			s.Equal(0.4, registry.SkillGainBonus(m.ID), "bound before the engine runs")
			return &engine.CheckOutput{}
		})
	mocks.ExpectMobileUpdate(s.ctx, s.mockRepo)

	_, err := orch.UseSkill(s.ctx, &UseSkillInput{MobileID: m.ID, Skill: entities.Alchemy})
	s.Require().NoError(err)

	mocks.ExpectMobileDelete(s.ctx, s.mockRepo, m.ID, nil)
	_, err = orch.DeleteMobile(s.ctx, &DeleteMobileInput{MobileID: m.ID})
	s.Require().NoError(err)
	_, ok := registry.Get(m.ID)
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestUpdateContextKeepsPhylactery() {
	m := testutils.CreateTestPlayer()
	m.Context.Phylactery = &entities.Phylactery{CooldownScale: 0.5}
	s.expectRoundTrip(m)

	out, err := s.orch.UpdateContext(s.ctx, &UpdateContextInput{
		MobileID: m.ID,
		Context:  entities.Context{Hunger: 3},
	})
	s.Require().NoError(err)
	s.Equal(3, out.Mobile.Context.Hunger)
	s.Require().NotNil(out.Mobile.Context.Phylactery)
	s.Equal(0.5, out.Mobile.Context.Phylactery.CooldownScale)
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("a")
	unlockB := k.Lock("b")
	if got := k.size(); got != 2 {
		t.Fatalf("expected 2 held keys, got %d", got)
	}

	acquired := make(chan struct{})
	go func() {
		unlock := k.Lock("a")
		close(acquired)
		unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held key")
	case <-time.After(20 * time.Millisecond):
	}

	unlockA()
	<-acquired
	unlockB()

	if got := k.size(); got != 0 {
		t.Fatalf("expected no held keys, got %d", got)
	}
}

// TestUseSkillConcurrentUsesSerialize drives a real engine and store from
// many goroutines. Every draw passes, so each use raises Blacksmith by the
// lowest band amount and only the first use can raise a stat inside the
// cooldown.
func TestUseSkillConcurrentUsesSerialize(t *testing.T) {
	backends := map[string]func(t *testing.T, c *clockmock.MockClock) progressionrepo.Repository{
		"memory": func(_ *testing.T, c *clockmock.MockClock) progressionrepo.Repository {
			return progressionrepo.NewInMemory(c)
		},
		"redis": func(t *testing.T, c *clockmock.MockClock) progressionrepo.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("redis repo: %v", err)
			}
			return repo
		},
	}

	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			runConcurrentUses(t, newRepo)
		})
	}
}

func runConcurrentUses(t *testing.T, newRepo func(*testing.T, *clockmock.MockClock) progressionrepo.Repository) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := testutils.TestEpoch.Add(time.Hour)
	mockClock := clockmock.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(now).AnyTimes()

	rand := testutils.NewScriptedRand()
	rand.FloatFallback = 0

	eng, err := skillcheck.New(&skillcheck.Config{
		Tuning: config.Default(),
		Rand:   rand,
		Clock:  mockClock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		// Blacksmith is not an anti-macro skill so the gate is never asked
		AntiMacro: enginemock.NewMockAntiMacroGate(ctrl),
	})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	repo := newRepo(t, mockClock)
	ctx := context.Background()
	if _, err := repo.Create(ctx, progressionrepo.CreateInput{Mobile: testutils.CreateTestPlayer()}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mockIDGen := idgenmock.NewMockGenerator(ctrl)
	orch, err := NewOrchestrator(&Config{
		Repository:  repo,
		Engine:      eng,
		IDGenerator: mockIDGen,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}

	const uses = 20
	var wg sync.WaitGroup
	errs := make(chan error, uses)
	for range uses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orch.UseSkill(ctx, &UseSkillInput{
				MobileID:   testutils.TestPlayerID,
				Skill:      entities.Blacksmith,
				Difficulty: engine.DirectChance(1),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("use skill: %v", err)
		}
	}

	got, err := repo.Get(ctx, progressionrepo.GetInput{ID: testutils.TestPlayerID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if base := got.Mobile.Skills.Get(entities.Blacksmith).Base; base != 2*uses {
		t.Errorf("expected Blacksmith %d, got %d", 2*uses, base)
	}
	if str := got.Mobile.Stats.Get(entities.Str); str != 51 {
		t.Errorf("expected one Str gain inside the cooldown, got Str %d", str)
	}
}

// TestStoredPhylacteryShortensStatCooldown equips a phylactery through one
// orchestrator and uses a skill through another built on the same store with
// an empty registry, the way separate CLI runs do.
func TestStoredPhylacteryShortensStatCooldown(t *testing.T) {
	for name, tc := range map[string]struct {
		equip   *entities.Phylactery
		wantStr int
	}{
		"halved cooldown has elapsed": {equip: &entities.Phylactery{CooldownScale: 0.5}, wantStr: 51},
		"no phylactery still cooling":  {equip: nil, wantStr: 50},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			now := testutils.TestEpoch.Add(time.Hour)
			mockClock := clockmock.NewMockClock(ctrl)
			mockClock.EXPECT().Now().Return(now).AnyTimes()

			repo := progressionrepo.NewInMemory(mockClock)
			ctx := context.Background()

			m := builders.NewMobileBuilder().WithID("soul-3").Build()
			m.Context.SoulBound = true
			m.Stats.LastGain[entities.Str] = now.Add(-10 * time.Minute)
			_, err := repo.Create(ctx, progressionrepo.CreateInput{Mobile: m})
			require.NoError(t, err)

			newOrch := func() Service {
				registry := phylactery.NewRegistry()
				rand := testutils.NewScriptedRand()
				rand.FloatFallback = 0

				eng, err := skillcheck.New(&skillcheck.Config{
					Tuning:     config.Default(),
					Rand:       rand,
					Clock:      mockClock,
					Phylactery: registry,
					AntiMacro:  enginemock.NewMockAntiMacroGate(ctrl),
					Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
				})
				require.NoError(t, err)

				orch, err := NewOrchestrator(&Config{
					Repository:   repo,
					Engine:       eng,
					IDGenerator:  idgenmock.NewMockGenerator(ctrl),
					Phylacteries: registry,
					Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
				})
				require.NoError(t, err)
				return orch
			}

			_, err = newOrch().EquipPhylactery(ctx, &EquipPhylacteryInput{MobileID: m.ID, Phylactery: tc.equip})
			require.NoError(t, err)

			out, err := newOrch().UseSkill(ctx, &UseSkillInput{
				MobileID:   m.ID,
				Skill:      entities.Blacksmith,
				Difficulty: engine.DirectChance(1),
			})
			require.NoError(t, err)
			require.NotNil(t, out.Check.Gain)
			assert.Equal(t, tc.wantStr, out.Mobile.Stats.Get(entities.Str))
		})
	}
}
