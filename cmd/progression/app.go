package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine/skillcheck"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/rng"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/services/antimacro"
	"github.com/KirkDiggler/rpg-progression/internal/services/notify"
	"github.com/KirkDiggler/rpg-progression/internal/services/phylactery"
	"github.com/KirkDiggler/rpg-progression/internal/services/region"
)

// app is the wired dependency graph shared by every command
type app struct {
	tuning     *config.Tuning
	clock      clock.Clock
	logger     *slog.Logger
	repo       progressionrepo.Repository
	regions    *region.Static
	antiMacro  *antimacro.Tracker
	phylactery *phylactery.Registry

	// redis is nil for the memory store
	redis   redisclient.Client
	closeFn func() error
}

func newApp(rt *config.Runtime) (*app, error) {
	logger := slog.Default()

	tuning, err := config.Load(rt.TuningPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tuning")
	}
	rt.Apply(tuning)

	clk := clock.New()

	regions, err := region.NewStatic(tuning.Regions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build regions")
	}

	tracker, err := antimacro.New(&antimacro.Config{
		Clock:     clk,
		Allowance: tuning.AntiMacro.Allowance,
		Expire:    tuning.AntiMacro.Expire,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	a := &app{
		tuning:     tuning,
		clock:      clk,
		logger:     logger,
		regions:    regions,
		antiMacro:  tracker,
		phylactery: phylactery.NewRegistry(),
		closeFn:    func() error { return nil },
	}

	switch rt.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClientFromURL(rt.RedisURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		repo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		a.repo = repo
		a.redis = client
		a.closeFn = client.Close
	default:
		a.repo = progressionrepo.NewInMemory(clk)
	}

	return a, nil
}

// newEngine builds an engine drawing from src, with its own event bus
func (a *app) newEngine(src rng.Source) (*skillcheck.Engine, error) {
	bus := events.NewBus()
	notify.Subscribe(bus, a.logger)

	publisher, err := notify.New(&notify.Config{Bus: bus, Logger: a.logger})
	if err != nil {
		return nil, err
	}

	return skillcheck.New(&skillcheck.Config{
		Tuning:     a.tuning,
		Rand:       src,
		Clock:      a.clock,
		AntiMacro:  a.antiMacro,
		Phylactery: a.phylactery,
		Regions:    a.regions,
		Refresh:    publisher,
		Milestones: publisher,
		Logger:     a.logger,
	})
}

func (a *app) newOrchestrator(src rng.Source, ids idgen.Generator) (progression.Service, error) {
	eng, err := a.newEngine(src)
	if err != nil {
		return nil, err
	}

	return progression.NewOrchestrator(&progression.Config{
		Repository:   a.repo,
		Engine:       eng,
		IDGenerator:  ids,
		Phylacteries: a.phylactery,
		Logger:       a.logger,
	})
}

// defaultSource is the process-wide random source. A seed makes runs repeatable.
func defaultSource(seed uint64) rng.Source {
	if seed != 0 {
		return rng.NewLocked(rng.NewSeeded(seed))
	}
	return rng.NewLocked(rng.NewDice(nil))
}

func (a *app) Close() error {
	return a.closeFn()
}
