package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/rng"
)

var (
	simMobiles int
	simUses    int
	simSkill   string
	simStart   float64
	simMin     float64
	simMax     float64
	simSeed    uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Train a skill on several mobiles in parallel",
	Long: `Simulate creates players with one starting skill and uses that skill
repeatedly on each of them concurrently. Every mobile draws from its own source
seeded from --seed, so a run is repeatable.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simMobiles, "mobiles", 4, "number of mobiles to train")
	simulateCmd.Flags().IntVar(&simUses, "uses", 1000, "skill uses per mobile")
	simulateCmd.Flags().StringVar(&simSkill, "skill", "Swords", "skill to train")
	simulateCmd.Flags().Float64Var(&simStart, "start", 30, "starting skill in points")
	simulateCmd.Flags().Float64Var(&simMin, "min", 0, "skill at which success becomes possible")
	simulateCmd.Flags().Float64Var(&simMax, "max", 120, "skill at which success is certain")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "base seed; mobile i uses seed+i")
}

type simResult struct {
	id     string
	gains  int
	raises int
	capped int
	start  int
	mobile *entities.Mobile
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simMobiles <= 0 || simUses <= 0 {
		return errors.InvalidArgument("--mobiles and --uses must be positive")
	}
	skill, err := entities.ParseSkillName(simSkill)
	if err != nil {
		return errors.InvalidArgument(err.Error())
	}

	a, err := newApp(settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn("failed to close store", "error", err)
		}
	}()

	ctx := cmd.Context()
	ids := idgen.NewSequential("sim")
	start := int(simStart*entities.FixedPointScale + 0.5)

	// created in order so ids line up with seeds
	services := make([]progression.Service, simMobiles)
	results := make([]*simResult, simMobiles)
	for i := range simMobiles {
		svc, err := a.newOrchestrator(rng.NewSeeded(simSeed+uint64(i)), ids)
		if err != nil {
			return err
		}
		out, err := svc.CreateMobile(ctx, &progression.CreateMobileInput{
			Name:   fmt.Sprintf("trainee %d", i+1),
			Kind:   entities.KindPlayer,
			Str:    50,
			Dex:    50,
			Int:    50,
			Skills: map[entities.SkillName]int{skill: start},
		})
		if err != nil {
			return err
		}
		services[i] = svc
		results[i] = &simResult{id: out.Mobile.ID, start: start}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range simMobiles {
		g.Go(func() error {
			return train(gctx, services[i], results[i], skill)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%-8s %8s %8s %6s %6s %8s %14s\n", "mobile", "start", "final", "gains", "stats", "capped", "str/dex/int")
	for _, r := range results {
		s := r.mobile.Stats
		fmt.Printf("%-8s %8s %8s %6d %6d %8d %14s\n",
			r.id,
			formatTenths(r.start),
			formatTenths(r.mobile.Skills.Get(skill).Base),
			r.gains,
			r.raises,
			r.capped,
			fmt.Sprintf("%d/%d/%d", s.Get(entities.Str), s.Get(entities.Dex), s.Get(entities.Int)),
		)
	}

	return nil
}

func train(ctx context.Context, svc progression.Service, r *simResult, skill entities.SkillName) error {
	input := &progression.UseSkillInput{
		MobileID:   r.id,
		Skill:      skill,
		Difficulty: engine.Band(simMin, simMax),
	}

	for range simUses {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := svc.UseSkill(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "mobile %s", r.id)
		}
		r.mobile = out.Mobile

		switch {
		case out.Check.Gain.Raised():
			r.gains++
		case out.Check.Gain != nil && out.Check.Gain.Outcome == engine.GainOverTotalCap:
			r.capped++
		}
		if out.Check.StatRaised {
			r.raises++
		}
	}

	return nil
}
