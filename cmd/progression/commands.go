package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

const commandTimeout = 10 * time.Second

var (
	createName   string
	createKind   string
	createStats  []int
	createSkills []string
	createCap    int
	createSoul   bool

	useMin    float64
	useMax    float64
	useChance float64
	useTarget string
	useSeed   uint64

	equipBonus  float64
	equipScale  float64
	equipRemove bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a mobile",
	Example: `  progression create --name "Iolo" --skill Musicianship=450 --skill Archery=300
  progression create --name "a llama" --kind pet --stats 30,20,10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind, err := parseKind(createKind)
		if err != nil {
			return err
		}
		if len(createStats) != entities.StatCount {
			return errors.InvalidArgumentf("--stats needs %d values, got %d", entities.StatCount, len(createStats))
		}
		skills, err := parseSkillBases(createSkills)
		if err != nil {
			return err
		}

		return withService(cmd, func(ctx context.Context, svc progression.Service) error {
			out, err := svc.CreateMobile(ctx, &progression.CreateMobileInput{
				Name:     createName,
				Kind:     kind,
				SkillCap: createCap,
				Str:      createStats[entities.Str],
				Dex:      createStats[entities.Dex],
				Int:      createStats[entities.Int],
				Skills:   skills,
				Context:  entities.Context{SoulBound: createSoul},
			})
			if err != nil {
				return err
			}
			return printJSON(out.Mobile)
		})
	},
}

var useCmd = &cobra.Command{
	Use:   "use <mobile-id> <skill>",
	Short: "Use a skill once",
	Long: `Use resolves one skill use. The difficulty is a skill band given by --min and
--max, or a fixed probability given by --chance.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, err := entities.ParseSkillName(args[1])
		if err != nil {
			return errors.InvalidArgument(err.Error())
		}

		difficulty := engine.Band(useMin, useMax)
		if cmd.Flags().Changed("chance") {
			difficulty = engine.DirectChance(useChance)
		}

		input := &progression.UseSkillInput{
			MobileID:   args[0],
			Skill:      skill,
			Difficulty: difficulty,
		}
		if useTarget != "" {
			input.Target = &entities.Target{ID: useTarget}
		}

		return withService(cmd, func(ctx context.Context, svc progression.Service) error {
			out, err := svc.UseSkill(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(out.Check)
		})
	},
}

var lockCmd = &cobra.Command{
	Use:   "lock <mobile-id> <skill|stat> <up|down|locked>",
	Short: "Set the lock on a skill or stat",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lock entities.Lock
		if err := lock.UnmarshalText([]byte(args[2])); err != nil {
			return errors.InvalidArgument(err.Error())
		}

		return withService(cmd, func(ctx context.Context, svc progression.Service) error {
			if stat, err := entities.ParseStat(args[1]); err == nil {
				_, err := svc.SetStatLock(ctx, &progression.SetStatLockInput{
					MobileID: args[0],
					Stat:     stat,
					Lock:     lock,
				})
				return err
			}

			skill, err := entities.ParseSkillName(args[1])
			if err != nil {
				return errors.InvalidArgumentf("%q is neither a stat nor a skill", args[1])
			}
			_, err = svc.SetSkillLock(ctx, &progression.SetSkillLockInput{
				MobileID: args[0],
				Skill:    skill,
				Lock:     lock,
			})
			return err
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip <mobile-id>",
	Short: "Equip or remove a mobile's phylactery",
	Long: `Equip stores a phylactery on the mobile. It only affects soul-bound players:
--bonus adds to the gain chance multiplier and --cooldown-scale multiplies the
stat gain cooldown.`,
	Example: `  progression equip mob-1234 --bonus 0.25 --cooldown-scale 0.5
  progression equip mob-1234 --remove`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := &progression.EquipPhylacteryInput{MobileID: args[0]}
		if !equipRemove {
			input.Phylactery = &entities.Phylactery{
				SkillGainBonus: equipBonus,
				CooldownScale:  equipScale,
			}
		}

		return withService(cmd, func(ctx context.Context, svc progression.Service) error {
			out, err := svc.EquipPhylactery(ctx, input)
			if err != nil {
				return err
			}
			return printJSON(out.Mobile)
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [mobile-id]",
	Short: "Show one mobile, or list them all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc progression.Service) error {
			if len(args) == 0 {
				out, err := svc.ListMobiles(ctx, &progression.ListMobilesInput{})
				if err != nil {
					return err
				}
				for _, m := range out.Mobiles {
					fmt.Printf("%s\t%s\t%s\t%s\n", m.ID, m.Kind, m.Name, formatTenths(m.Skills.Total()))
				}
				return nil
			}

			out, err := svc.GetMobile(ctx, &progression.GetMobileInput{MobileID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(out.Mobile)
		})
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "mobile name")
	createCmd.Flags().StringVar(&createKind, "kind", "player", "player, pet or creature")
	createCmd.Flags().IntSliceVar(&createStats, "stats", []int{50, 50, 50}, "str,dex,int")
	createCmd.Flags().StringArrayVar(&createSkills, "skill", nil, "starting skill as Name=base, base in points (repeatable)")
	createCmd.Flags().IntVar(&createCap, "skill-cap", 0, "total skill cap in tenths (default 7000)")
	createCmd.Flags().BoolVar(&createSoul, "soul-bound", false, "create a soul-bound player")
	_ = createCmd.MarkFlagRequired("name")

	useCmd.Flags().Float64Var(&useMin, "min", 0, "skill at which success becomes possible")
	useCmd.Flags().Float64Var(&useMax, "max", 100, "skill at which success is certain")
	useCmd.Flags().Float64Var(&useChance, "chance", 0, "fixed success probability, overrides --min and --max")
	useCmd.Flags().StringVar(&useTarget, "target", "", "target id for a targeted use")
	useCmd.Flags().Uint64Var(&useSeed, "seed", 0, "seed for the random source (0 draws from dice)")

	equipCmd.Flags().Float64Var(&equipBonus, "bonus", 0, "skill gain bonus, added to 1 and multiplied into the gain chance")
	equipCmd.Flags().Float64Var(&equipScale, "cooldown-scale", 0, "stat gain cooldown multiplier (0 leaves it unchanged)")
	equipCmd.Flags().BoolVar(&equipRemove, "remove", false, "remove the equipped phylactery")
	equipCmd.MarkFlagsMutuallyExclusive("remove", "bonus")
	equipCmd.MarkFlagsMutuallyExclusive("remove", "cooldown-scale")
}

// withService wires the app for a single command and tears it down after
func withService(cmd *cobra.Command, fn func(context.Context, progression.Service) error) error {
	a, err := newApp(settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn("failed to close store", "error", err)
		}
	}()

	seed := settings.Seed
	if cmd.Flags().Lookup("seed") != nil && cmd.Flags().Changed("seed") {
		seed = useSeed
	}

	svc, err := a.newOrchestrator(defaultSource(seed), idgen.NewUUID("mob"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	return fn(ctx, svc)
}

func parseKind(s string) (entities.Kind, error) {
	var k entities.Kind
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.InvalidArgument(err.Error())
	}
	return k, nil
}

// parseSkillBases reads Name=points pairs into fixed-point bases
func parseSkillBases(pairs []string) (map[entities.SkillName]int, error) {
	skills := make(map[entities.SkillName]int, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.InvalidArgumentf("skill %q must be Name=base", pair)
		}
		skill, err := entities.ParseSkillName(name)
		if err != nil {
			return nil, errors.InvalidArgument(err.Error())
		}
		points, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.InvalidArgumentf("skill %s base %q is not a number", name, value)
		}
		skills[skill] = int(points*entities.FixedPointScale + 0.5)
	}
	return skills, nil
}

func formatTenths(v int) string {
	return strconv.FormatFloat(float64(v)/entities.FixedPointScale, 'f', 1, 64)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}
	fmt.Println(string(data))
	return nil
}
