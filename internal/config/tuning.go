// Package config holds the progression tuning tables and process settings
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Tuning holds every numeric constant of the progression rules
type Tuning struct {
	Gain      GainTuning      `yaml:"gain"`
	Ledger    LedgerTuning    `yaml:"ledger"`
	Stats     StatTuning      `yaml:"stats"`
	AntiMacro AntiMacroTuning `yaml:"anti_macro"`
	Regions   []RegionDef     `yaml:"regions"`
}

// GainTuning drives the gain chance composition
type GainTuning struct {
	DefaultGainer float64   `yaml:"default_gainer"`
	GuildGainers  []float64 `yaml:"guild_gainers"`

	SuccessBonus       float64 `yaml:"success_bonus"`
	AOS                bool    `yaml:"aos"`
	AOSFailureBonus    float64 `yaml:"aos_failure_bonus"`
	LegacyFailureBonus float64 `yaml:"legacy_failure_bonus"`

	MinGainChance       float64 `yaml:"min_gain_chance"`
	AnimalLoreWildBonus float64 `yaml:"animal_lore_wild_bonus"`
	PetBonus            float64 `yaml:"pet_bonus"`

	AvatarMultiplier  float64      `yaml:"avatar_multiplier"`
	NormalMultiplier  float64      `yaml:"normal_multiplier"`
	HungerBands       []HungerBand `yaml:"hunger_bands"`
	OverfedMultiplier float64      `yaml:"overfed_multiplier"`

	// Zones is keyed by the ZoneID of rectangle regions
	Zones map[string]ZoneBonus `yaml:"zones"`
	// NamedBonuses applies to soul-bound players inside the named region
	NamedBonuses map[string]float64 `yaml:"named_bonuses"`

	DifficultyDivisor float64 `yaml:"difficulty_divisor"`
	PassiveDivisor    float64 `yaml:"passive_divisor"`

	AlwaysGainBelow int `yaml:"always_gain_below"`
	FishingBoatBase int `yaml:"fishing_boat_base"`

	StimulantMultiplier float64 `yaml:"stimulant_multiplier"`
	StimulantDivisor    float64 `yaml:"stimulant_divisor"`
}

// HungerBand applies to hunger values up to and including Max
type HungerBand struct {
	Max        int     `yaml:"max"`
	Multiplier float64 `yaml:"multiplier"`
	Divisor    float64 `yaml:"divisor"`
}

// Factor is the combined effect of the band on the gain chance
func (b HungerBand) Factor() float64 {
	return b.Multiplier / b.Divisor
}

// ZoneBonus rewards members of a guild whose name contains GuildName
type ZoneBonus struct {
	GuildName string  `yaml:"guild_name"`
	Bonus     float64 `yaml:"bonus"`
}

// GainBand is one step of a gain curve. Roll > 0 grants a single point when
// rng.IntRange(0, Roll) == 1; otherwise the amount is drawn from [Min, Max].
// UpTo of the final band is ignored.
type GainBand struct {
	UpTo int `yaml:"up_to"`
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Roll int `yaml:"roll"`
}

// LedgerTuning drives the gain amount and cap handling
type LedgerTuning struct {
	NormalBands    []GainBand           `yaml:"normal_bands"`
	AlternateBands []GainBand           `yaml:"alternate_bands"`
	MeditativeRoll int                  `yaml:"meditative_roll"`
	Meditative     []entities.SkillName `yaml:"meditative"`

	AlacrityMin int `yaml:"alacrity_min"`
	AlacrityMax int `yaml:"alacrity_max"`

	MilestoneThreshold int `yaml:"milestone_threshold"`
}

// StatTuning drives attribute gain
type StatTuning struct {
	PlayerCooldown    time.Duration `yaml:"player_cooldown"`
	PetCooldown       time.Duration `yaml:"pet_cooldown"`
	FastGainThreshold float64       `yaml:"fast_gain_threshold"`
	FastGainDivisor   float64       `yaml:"fast_gain_divisor"`
	StatGainDivisor   float64       `yaml:"stat_gain_divisor"`

	NormalMax        int `yaml:"normal_max"`
	HighMax          int `yaml:"high_max"`
	HighCapThreshold int `yaml:"high_cap_threshold"`
}

// AntiMacroTuning configures the repeat-action gate
type AntiMacroTuning struct {
	Enabled      bool                 `yaml:"enabled"`
	Allowance    int                  `yaml:"allowance"`
	Expire       time.Duration        `yaml:"expire"`
	LocationSize int                  `yaml:"location_size"`
	Skills       []entities.SkillName `yaml:"skills"`
}

// RegionDef is an axis-aligned rectangle on a map, bounds inclusive
type RegionDef struct {
	Name        string            `yaml:"name"`
	Kind        engine.RegionKind `yaml:"kind"`
	ZoneID      string            `yaml:"zone_id"`
	Map         string            `yaml:"map"`
	MinX        int               `yaml:"min_x"`
	MinY        int               `yaml:"min_y"`
	MaxX        int               `yaml:"max_x"`
	MaxY        int               `yaml:"max_y"`
	Difficulty  float64           `yaml:"difficulty"`
	NoSkillGain bool              `yaml:"no_skill_gain"`
	Ruleset     engine.Ruleset    `yaml:"ruleset"`
}

// Contains reports whether loc lies inside the region
func (r RegionDef) Contains(loc entities.Location) bool {
	return loc.Map == r.Map &&
		loc.X >= r.MinX && loc.X <= r.MaxX &&
		loc.Y >= r.MinY && loc.Y <= r.MaxY
}

// Default returns the stock tuning
func Default() *Tuning {
	return &Tuning{
		Gain: GainTuning{
			DefaultGainer:       1.0,
			GuildGainers:        []float64{0.900, 0.875, 0.850, 0.825, 0.800, 0.775},
			SuccessBonus:        0.5,
			AOSFailureBonus:     0.0,
			LegacyFailureBonus:  0.2,
			MinGainChance:       0.01,
			AnimalLoreWildBonus: 1.5,
			PetBonus:            1.45,
			AvatarMultiplier:    1.5,
			NormalMultiplier:    1.0,
			HungerBands: []HungerBand{
				{Max: 3, Multiplier: 1, Divisor: 1.5},
				{Max: 10, Multiplier: 1, Divisor: 1.25},
				{Max: 20, Multiplier: 1.10, Divisor: 1},
				{Max: 25, Multiplier: 1.25, Divisor: 1},
				{Max: 30, Multiplier: 1.5, Divisor: 1},
			},
			OverfedMultiplier: 2.0,
			Zones: map[string]ZoneBonus{
				"church_of_justice": {GuildName: "the church of justice", Bonus: 1.25},
			},
			NamedBonuses: map[string]float64{
				"the Basement": 4.0,
			},
			DifficultyDivisor:   5,
			PassiveDivisor:      2,
			AlwaysGainBelow:     100,
			FishingBoatBase:     600,
			StimulantMultiplier: 0.08,
			StimulantDivisor:    60,
		},
		Ledger: LedgerTuning{
			NormalBands: []GainBand{
				{UpTo: 250, Min: 2, Max: 3},
				{UpTo: 550, Min: 2, Max: 2},
				{UpTo: 900, Min: 1, Max: 1},
				{UpTo: 950, Roll: 1},
				{UpTo: 1000, Roll: 2},
				{UpTo: 1050, Roll: 3},
				{UpTo: 1100, Roll: 4},
				{Roll: 5},
			},
			AlternateBands: []GainBand{
				{UpTo: 250, Min: 3, Max: 4},
				{UpTo: 550, Min: 2, Max: 3},
				{UpTo: 900, Min: 2, Max: 2},
				{UpTo: 1000, Min: 1, Max: 1},
				{UpTo: 1050, Roll: 1},
				{UpTo: 1100, Roll: 2},
				{Roll: 3},
			},
			MeditativeRoll:     2,
			Meditative:         []entities.SkillName{entities.Focus, entities.Meditation},
			AlacrityMin:        2,
			AlacrityMax:        4,
			MilestoneThreshold: 1000,
		},
		Stats: StatTuning{
			PlayerCooldown:    15 * time.Minute,
			PetCooldown:       5 * time.Minute,
			FastGainThreshold: 2,
			FastGainDivisor:   2,
			StatGainDivisor:   33.3,
			NormalMax:         150,
			HighMax:           175,
			HighCapThreshold:  275,
		},
		AntiMacro: AntiMacroTuning{
			Enabled:      true,
			Allowance:    3,
			Expire:       5 * time.Minute,
			LocationSize: 5,
			Skills: []entities.SkillName{
				entities.Hiding, entities.Musicianship, entities.SpiritSpeak, entities.Swords,
				entities.Macing, entities.Fencing, entities.Wrestling, entities.Focus,
			},
		},
		Regions: []RegionDef{
			{Name: "Jail", Kind: engine.RegionNamed, Map: "Sosaria",
				MinX: 5271, MinY: 1159, MaxX: 5311, MaxY: 1184, NoSkillGain: true},
			{Name: "the Basement", Kind: engine.RegionNamed, Map: "Sosaria",
				MinX: 5870, MinY: 1870, MaxX: 5940, MaxY: 1930},
			{Name: "Church of Justice", Kind: engine.RegionRectangle, ZoneID: "church_of_justice", Map: "Trammel",
				MinX: 2586, MinY: 1402, MaxX: 2766, MaxY: 1595},
			{Name: "Dungeon Deceit", Kind: engine.RegionDungeon, Map: "Sosaria",
				MinX: 5122, MinY: 530, MaxX: 5370, MaxY: 785, Difficulty: 3},
			{Name: "Dungeon Shame", Kind: engine.RegionDungeon, Map: "Sosaria",
				MinX: 5377, MinY: 2, MaxX: 5630, MaxY: 258, Difficulty: 2},
			{Name: "Midland", Kind: engine.RegionNone, Map: "Underworld",
				MinX: 0, MinY: 0, MaxX: 7168, MaxY: 4096, Ruleset: engine.RulesetAlternate},
		},
	}
}

// Load overlays the YAML file at path on the defaults. Lists and maps given in
// the file replace the defaults wholesale. A missing file yields the defaults.
func Load(path string) (*Tuning, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read tuning %s", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse tuning "+path)
	}
	clearReplacedMaps(&doc, cfg)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse tuning "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// clearReplacedMaps drops default maps the document sets. yaml merges into a
// non-nil map, which would leave default entries behind.
func clearReplacedMaps(doc *yaml.Node, cfg *Tuning) {
	gain := mappingValue(doc, "gain")
	if mappingValue(gain, "zones") != nil {
		cfg.Gain.Zones = nil
	}
	if mappingValue(gain, "named_bonuses") != nil {
		cfg.Gain.NamedBonuses = nil
	}
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// FailureBonus is the outcome bonus for a failed trial in the configured era
func (g *GainTuning) FailureBonus() float64 {
	if g.AOS {
		return g.AOSFailureBonus
	}
	return g.LegacyFailureBonus
}

// Validate checks that the tuning is internally consistent
func (t *Tuning) Validate() error {
	vb := errors.NewValidationBuilder()

	g := &t.Gain
	errors.ValidatePositive("gain.default_gainer", g.DefaultGainer, vb)
	if len(g.GuildGainers) == 0 {
		vb.RequiredField("gain.guild_gainers")
	}
	for i, v := range g.GuildGainers {
		if v <= 0 {
			vb.Fieldf("gain.guild_gainers", "entry %d must be positive", i)
		}
	}
	errors.ValidateRange("gain.min_gain_chance", g.MinGainChance, 0, 1, vb)
	errors.ValidatePositive("gain.difficulty_divisor", g.DifficultyDivisor, vb)
	errors.ValidatePositive("gain.passive_divisor", g.PassiveDivisor, vb)
	errors.ValidatePositive("gain.stimulant_divisor", g.StimulantDivisor, vb)
	prev := -1 << 31
	for i, b := range g.HungerBands {
		if b.Max <= prev {
			vb.Fieldf("gain.hunger_bands", "band %d must have a larger max than the band before it", i)
		}
		if b.Multiplier <= 0 || b.Divisor <= 0 {
			vb.Fieldf("gain.hunger_bands", "band %d needs a positive multiplier and divisor", i)
		}
		prev = b.Max
	}
	for id, z := range g.Zones {
		if z.GuildName == "" {
			vb.Fieldf("gain.zones", "zone %q needs a guild name", id)
		}
	}

	l := &t.Ledger
	validateBands("ledger.normal_bands", l.NormalBands, vb)
	validateBands("ledger.alternate_bands", l.AlternateBands, vb)
	errors.ValidatePositive("ledger.meditative_roll", l.MeditativeRoll, vb)
	errors.ValidatePositive("ledger.alacrity_min", l.AlacrityMin, vb)
	if l.AlacrityMax < l.AlacrityMin {
		vb.Field("ledger.alacrity_max", "must not be below alacrity_min")
	}
	errors.ValidatePositive("ledger.milestone_threshold", l.MilestoneThreshold, vb)

	s := &t.Stats
	if s.PlayerCooldown < 0 || s.PetCooldown < 0 {
		vb.Field("stats.cooldown", "must not be negative")
	}
	errors.ValidatePositive("stats.fast_gain_divisor", s.FastGainDivisor, vb)
	errors.ValidatePositive("stats.stat_gain_divisor", s.StatGainDivisor, vb)
	if s.NormalMax <= entities.StatFloor || s.HighMax < s.NormalMax {
		vb.Field("stats.normal_max", "ceilings must exceed the stat floor and high_max must not be below normal_max")
	}

	a := &t.AntiMacro
	if a.Enabled {
		errors.ValidatePositive("anti_macro.allowance", a.Allowance, vb)
		errors.ValidatePositive("anti_macro.location_size", a.LocationSize, vb)
		if a.Expire <= 0 {
			vb.Field("anti_macro.expire", "must be positive")
		}
	}

	for i, r := range t.Regions {
		if r.Name == "" {
			vb.Fieldf("regions", "region %d needs a name", i)
		}
		if r.MaxX < r.MinX || r.MaxY < r.MinY {
			vb.Fieldf("regions", "region %q has inverted bounds", r.Name)
		}
		if r.Kind == engine.RegionRectangle {
			if _, ok := g.Zones[r.ZoneID]; !ok {
				vb.Fieldf("regions", "region %q references unknown zone %q", r.Name, r.ZoneID)
			}
		}
	}

	return vb.Build()
}

func validateBands(field string, bands []GainBand, vb *errors.ValidationBuilder) {
	if len(bands) == 0 {
		vb.RequiredField(field)
		return
	}
	for i, b := range bands {
		if b.Roll < 0 || (b.Roll == 0 && (b.Min < 0 || b.Max < b.Min)) {
			vb.Fieldf(field, "band %d has an invalid amount", i)
		}
		if i > 0 && i < len(bands)-1 && b.UpTo <= bands[i-1].UpTo {
			vb.Fieldf(field, "band %d must have a larger upper bound than the band before it", i)
		}
	}
}
