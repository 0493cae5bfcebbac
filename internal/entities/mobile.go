package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Kind distinguishes players from creatures and controlled pets
type Kind int

const (
	KindPlayer Kind = iota
	KindPet
	KindCreature
)

var kindNames = [...]string{"player", "pet", "creature"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", string(text))
}

// Location is a point on a named map
type Location struct {
	Map string `json:"map" yaml:"map"`
	X   int    `json:"x" yaml:"x"`
	Y   int    `json:"y" yaml:"y"`
	Z   int    `json:"z" yaml:"z"`
}

// GuildMembership is the player-run guild an entity belongs to
type GuildMembership struct {
	Name      string `json:"name"`
	Disbanded bool   `json:"disbanded"`
}

// Phylactery is the soul vessel a soul-bound character carries
type Phylactery struct {
	// SkillGainBonus is added to 1 and multiplied into the gain chance
	SkillGainBonus float64 `json:"skill_gain_bonus"`
	// CooldownScale multiplies the stat gain cooldown; 0 leaves it unchanged
	CooldownScale float64 `json:"cooldown_scale"`
}

// Context is the per-call situational state read by the engine
type Context struct {
	NPCGuild  NPCGuild         `json:"npc_guild"`
	Guild     *GuildMembership `json:"guild,omitempty"`
	Hunger    int              `json:"hunger"`
	Avatar    bool             `json:"avatar"`
	SoulBound bool             `json:"soul_bound"`
	FastGain  float64          `json:"fast_gain"`

	// Scroll of alacrity
	AcceleratedSkill SkillName `json:"accelerated_skill"`
	AcceleratedUntil time.Time `json:"accelerated_until"`

	Location  Location `json:"location"`
	OnBoat    bool     `json:"on_boat"`
	Stimulant int      `json:"stimulant"`

	// Phylactery is the equipped soul vessel, nil when none is worn
	Phylactery *Phylactery `json:"phylactery,omitempty"`
}

// Mobile is anything that can use skills: players, pets and creatures
type Mobile struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Kind    Kind        `json:"kind"`
	Alive   bool        `json:"alive"`
	DeadPet bool        `json:"dead_pet"`
	Skills  *SkillSet   `json:"skills"`
	Stats   *Attributes `json:"stats"`
	Context Context     `json:"context"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Mobile)(nil)

// GetID returns the mobile's ID
func (m *Mobile) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Mobile) GetType() string {
	return "mobile_" + m.Kind.String()
}

// IsPlayer reports whether the mobile is player controlled
func (m *Mobile) IsPlayer() bool {
	return m.Kind == KindPlayer
}

// IsPet reports whether the mobile is a controlled creature
func (m *Mobile) IsPet() bool {
	return m.Kind == KindPet
}

// Target is the object a targeted skill check is made against
type Target struct {
	ID           string `json:"id"`
	Creature     bool   `json:"creature"`
	Controlled   bool   `json:"controlled"`
	VendorBought bool   `json:"vendor_bought"`
}
