package entities

import (
	"fmt"
	"strings"
)

// SkillName is the stable integer id of a skill
type SkillName int

// Skill ids. The numbering is part of the persisted format.
const (
	Alchemy SkillName = iota
	Anatomy
	AnimalLore
	ItemID
	ArmsLore
	Parry
	Begging
	Blacksmith
	Fletching
	Peacemaking
	Camping
	Carpentry
	Cartography
	Cooking
	DetectHidden
	Discordance
	EvalInt
	Healing
	Fishing
	Forensics
	Herding
	Hiding
	Provocation
	Inscribe
	Lockpicking
	Magery
	MagicResist
	Tactics
	Snooping
	Musicianship
	Poisoning
	Archery
	SpiritSpeak
	Stealing
	Tailoring
	AnimalTaming
	TasteID
	Tinkering
	Tracking
	Veterinary
	Swords
	Macing
	Fencing
	Wrestling
	Lumberjacking
	Mining
	Meditation
	Stealth
	RemoveTrap
	Necromancy
	Focus
	Chivalry
	Bushido
	Ninjitsu
	Spellweaving

	// SkillCount is the fixed number of skills every SkillSet carries
	SkillCount = int(Spellweaving) + 1
)

// FixedPointScale converts between fixed-point skill values and points
const FixedPointScale = 10

// DungeonClass partitions skills for the dungeon-difficulty bonus
type DungeonClass int

const (
	DungeonNone DungeonClass = iota
	DungeonPassive
	DungeonActive
)

// SkillInfo is the static description of a skill
type SkillInfo struct {
	Name       SkillName
	Key        string
	Title      string
	GainFactor float64
	StrGain    float64
	DexGain    float64
	IntGain    float64
	Dungeon    DungeonClass
}

var skillInfos = [SkillCount]SkillInfo{
	{Alchemy, "Alchemy", "Alchemist", 1.0, 0.0, 0.5, 0.5, DungeonNone},
	{Anatomy, "Anatomy", "Biologist", 1.0, 0.15, 0.15, 0.7, DungeonPassive},
	{AnimalLore, "AnimalLore", "Naturalist", 1.0, 0.0, 0.0, 1.0, DungeonPassive},
	{ItemID, "ItemID", "Merchant", 1.0, 0.0, 0.0, 1.0, DungeonPassive},
	{ArmsLore, "ArmsLore", "Weapon Master", 1.0, 0.75, 0.15, 0.1, DungeonNone},
	{Parry, "Parry", "Duelist", 1.0, 0.75, 0.25, 0.0, DungeonPassive},
	{Begging, "Begging", "Beggar", 1.0, 0.0, 0.0, 0.0, DungeonNone},
	{Blacksmith, "Blacksmith", "Blacksmith", 1.0, 1.0, 0.0, 0.0, DungeonNone},
	{Fletching, "Fletching", "Bowyer", 1.0, 0.6, 1.0, 0.0, DungeonNone},
	{Peacemaking, "Peacemaking", "Pacifier", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{Camping, "Camping", "Explorer", 1.0, 1.0, 1.0, 1.0, DungeonNone},
	{Carpentry, "Carpentry", "Carpenter", 1.0, 1.0, 0.5, 0.0, DungeonNone},
	{Cartography, "Cartography", "Cartographer", 1.0, 0.0, 0.75, 0.75, DungeonNone},
	{Cooking, "Cooking", "Chef", 1.0, 0.0, 1.0, 1.0, DungeonNone},
	{DetectHidden, "DetectHidden", "Scout", 1.0, 0.0, 0.4, 0.6, DungeonPassive},
	{Discordance, "Discordance", "Demoralizer", 1.0, 0.0, 0.25, 0.25, DungeonActive},
	{EvalInt, "EvalInt", "Scholar", 1.0, 0.0, 0.0, 1.0, DungeonPassive},
	{Healing, "Healing", "Healer", 1.0, 0.6, 0.6, 0.8, DungeonNone},
	{Fishing, "Fishing", "Fisherman", 1.0, 0.5, 0.5, 0.0, DungeonNone},
	{Forensics, "Forensics", "Detective", 1.0, 0.0, 0.2, 0.8, DungeonNone},
	{Herding, "Herding", "Shepherd", 1.0, 1.0, 0.625, 0.25, DungeonNone},
	{Hiding, "Hiding", "Shade", 1.0, 0.0, 0.8, 0.2, DungeonPassive},
	{Provocation, "Provocation", "Rouser", 1.0, 0.0, 0.45, 0.05, DungeonActive},
	{Inscribe, "Inscribe", "Scribe", 1.0, 0.0, 0.2, 0.8, DungeonNone},
	{Lockpicking, "Lockpicking", "Infiltrator", 1.0, 0.0, 1.0, 0.0, DungeonPassive},
	{Magery, "Magery", "Mage", 1.0, 0.0, 0.0, 1.0, DungeonActive},
	{MagicResist, "MagicResist", "Warder", 1.0, 0.25, 0.25, 0.5, DungeonNone},
	{Tactics, "Tactics", "Tactician", 1.0, 0.0, 0.0, 0.0, DungeonPassive},
	{Snooping, "Snooping", "Spy", 1.0, 0.0, 1.0, 0.0, DungeonNone},
	{Musicianship, "Musicianship", "Bard", 1.0, 0.0, 0.8, 0.2, DungeonPassive},
	{Poisoning, "Poisoning", "Assassin", 1.0, 0.0, 0.4, 1.0, DungeonNone},
	{Archery, "Archery", "Archer", 1.0, 0.25, 0.75, 0.0, DungeonActive},
	{SpiritSpeak, "SpiritSpeak", "Medium", 1.0, 0.0, 0.0, 1.0, DungeonNone},
	{Stealing, "Stealing", "Pickpocket", 1.0, 0.0, 1.0, 0.0, DungeonActive},
	{Tailoring, "Tailoring", "Tailor", 1.0, 0.38, 1.0, 0.5, DungeonNone},
	{AnimalTaming, "AnimalTaming", "Tamer", 1.0, 1.0, 0.2, 0.4, DungeonNone},
	{TasteID, "TasteID", "Praegustator", 1.0, 0.2, 0.0, 0.8, DungeonPassive},
	{Tinkering, "Tinkering", "Tinker", 1.0, 0.5, 0.2, 0.3, DungeonNone},
	{Tracking, "Tracking", "Ranger", 1.0, 0.0, 1.0, 1.0, DungeonPassive},
	{Veterinary, "Veterinary", "Veterinarian", 1.0, 0.8, 0.4, 0.8, DungeonNone},
	{Swords, "Swords", "Swordsman", 1.0, 0.75, 0.25, 0.0, DungeonActive},
	{Macing, "Macing", "Armsman", 1.0, 0.9, 0.1, 0.0, DungeonActive},
	{Fencing, "Fencing", "Fencer", 1.0, 0.45, 0.55, 0.0, DungeonActive},
	{Wrestling, "Wrestling", "Wrestler", 1.0, 0.9, 0.1, 0.0, DungeonNone},
	{Lumberjacking, "Lumberjacking", "Lumberjack", 1.0, 1.0, 0.0, 0.0, DungeonNone},
	{Mining, "Mining", "Miner", 1.0, 1.0, 0.0, 0.0, DungeonPassive},
	{Meditation, "Meditation", "Stoic", 1.0, 0.0, 0.0, 0.0, DungeonPassive},
	{Stealth, "Stealth", "Rogue", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{RemoveTrap, "RemoveTrap", "Trap Specialist", 1.0, 0.0, 0.0, 0.0, DungeonPassive},
	{Necromancy, "Necromancy", "Necromancer", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{Focus, "Focus", "Driven", 1.0, 0.0, 0.0, 0.0, DungeonNone},
	{Chivalry, "Chivalry", "Paladin", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{Bushido, "Bushido", "Samurai", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{Ninjitsu, "Ninjitsu", "Ninja", 1.0, 0.0, 0.0, 0.0, DungeonActive},
	{Spellweaving, "Spellweaving", "Arcanist", 1.0, 0.0, 0.0, 0.0, DungeonNone},
}

// Valid reports whether n names a known skill
func (n SkillName) Valid() bool {
	return n >= 0 && int(n) < SkillCount
}

// Info returns the static description of the skill. Unknown ids panic.
func (n SkillName) Info() *SkillInfo {
	if !n.Valid() {
		panic(fmt.Sprintf("entities: unknown skill id %d", int(n)))
	}
	return &skillInfos[n]
}

func (n SkillName) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Skill(%d)", int(n))
	}
	return skillInfos[n].Key
}

// MarshalText implements encoding.TextMarshaler
func (n SkillName) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("unknown skill id %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching ignores case.
func (n *SkillName) UnmarshalText(text []byte) error {
	parsed, err := ParseSkillName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseSkillName resolves a skill key such as "AnimalLore"
func ParseSkillName(s string) (SkillName, error) {
	for i := range skillInfos {
		if strings.EqualFold(skillInfos[i].Key, s) {
			return skillInfos[i].Name, nil
		}
	}
	return 0, fmt.Errorf("unknown skill %q", s)
}

// Lock is the direction a skill or stat is allowed to move
type Lock int

const (
	LockUp Lock = iota
	LockDown
	LockLocked
)

var lockNames = [...]string{"up", "down", "locked"}

func (l Lock) String() string {
	if l < 0 || int(l) >= len(lockNames) {
		return fmt.Sprintf("Lock(%d)", int(l))
	}
	return lockNames[l]
}

// MarshalText implements encoding.TextMarshaler
func (l Lock) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(lockNames) {
		return nil, fmt.Errorf("unknown lock %d", int(l))
	}
	return []byte(lockNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Lock) UnmarshalText(text []byte) error {
	for i, name := range lockNames {
		if strings.EqualFold(name, string(text)) {
			*l = Lock(i)
			return nil
		}
	}
	return fmt.Errorf("unknown lock %q", string(text))
}

// Skill is one entry of a SkillSet. Base and Cap are fixed-point tenths.
type Skill struct {
	Name SkillName `json:"name"`
	Base int       `json:"base"`
	Cap  int       `json:"cap"`
	Lock Lock      `json:"lock"`

	// Mod is a transient bonus from equipment; it is not persisted
	Mod int `json:"-"`
}

// Info returns the static description of the skill
func (s *Skill) Info() *SkillInfo {
	return s.Name.Info()
}

// Value is the effective skill in points, including Mod
func (s *Skill) Value() float64 {
	return float64(s.Base+s.Mod) / FixedPointScale
}

// SetBase stores base saturated to [0, Cap]
func (s *Skill) SetBase(base int) {
	s.Base = max(0, min(base, s.Cap))
}

// SkillSet is the fixed, ordered collection of an entity's skills
type SkillSet struct {
	Cap    int     `json:"cap"`
	Skills []Skill `json:"skills"`
}

// NewSkillSet creates every skill at base 0 with the given per-skill cap
func NewSkillSet(totalCap, skillCap int) *SkillSet {
	set := &SkillSet{
		Cap:    totalCap,
		Skills: make([]Skill, SkillCount),
	}
	for i := range set.Skills {
		set.Skills[i] = Skill{Name: SkillName(i), Cap: skillCap, Lock: LockUp}
	}
	return set
}

// Get returns the skill by id. Unknown ids and malformed sets panic.
func (s *SkillSet) Get(name SkillName) *Skill {
	if !name.Valid() || int(name) >= len(s.Skills) {
		panic(fmt.Sprintf("entities: skill %d not present in set of %d", int(name), len(s.Skills)))
	}
	return &s.Skills[name]
}

// Total is the sum of every skill's base
func (s *SkillSet) Total() int {
	total := 0
	for i := range s.Skills {
		total += s.Skills[i].Base
	}
	return total
}
