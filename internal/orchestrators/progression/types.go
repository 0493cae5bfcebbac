package progression

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Defaults applied by CreateMobile when the input leaves a cap unset
const (
	DefaultSkillCap    = 7000
	DefaultPerSkillCap = 1000
	DefaultStatCap     = 225
)

// CreateMobileInput defines the request for creating a mobile
type CreateMobileInput struct {
	Name string
	Kind entities.Kind

	// SkillCap is the total skill cap in tenths; zero selects DefaultSkillCap
	SkillCap int
	// PerSkillCap is each skill's cap in tenths; zero selects DefaultPerSkillCap
	PerSkillCap int
	// StatCap is the attribute total cap; zero selects DefaultStatCap
	StatCap int

	Str int
	Dex int
	Int int

	// Skills seeds starting bases in tenths
	Skills  map[entities.SkillName]int
	Context entities.Context
}

// CreateMobileOutput defines the response for creating a mobile
type CreateMobileOutput struct {
	Mobile *entities.Mobile
}

// GetMobileInput defines the request for getting a mobile
type GetMobileInput struct {
	MobileID string
}

// GetMobileOutput defines the response for getting a mobile
type GetMobileOutput struct {
	Mobile *entities.Mobile
}

// ListMobilesInput defines the request for listing mobiles
type ListMobilesInput struct {
	Kind *entities.Kind
}

// ListMobilesOutput defines the response for listing mobiles
type ListMobilesOutput struct {
	Mobiles []*entities.Mobile
}

// DeleteMobileInput defines the request for deleting a mobile
type DeleteMobileInput struct {
	MobileID string
}

// DeleteMobileOutput defines the response for deleting a mobile
type DeleteMobileOutput struct{}

// UseSkillInput defines a single skill use. A nil Target makes it a
// location check.
type UseSkillInput struct {
	MobileID   string
	Skill      entities.SkillName
	Difficulty engine.Difficulty
	Target     *entities.Target
}

// UseSkillOutput defines the result of a skill use
type UseSkillOutput struct {
	Check  *engine.CheckOutput
	Mobile *entities.Mobile
}

// SetSkillLockInput defines the request for changing a skill lock
type SetSkillLockInput struct {
	MobileID string
	Skill    entities.SkillName
	Lock     entities.Lock
}

// SetSkillLockOutput defines the response for changing a skill lock
type SetSkillLockOutput struct {
	Mobile *entities.Mobile
}

// SetStatLockInput defines the request for changing a stat lock
type SetStatLockInput struct {
	MobileID string
	Stat     entities.Stat
	Lock     entities.Lock
}

// SetStatLockOutput defines the response for changing a stat lock
type SetStatLockOutput struct {
	Mobile *entities.Mobile
}

// UpdateContextInput defines the request for replacing a mobile's situational context
type UpdateContextInput struct {
	MobileID string
	Context  entities.Context
	Alive    *bool
}

// UpdateContextOutput defines the response for replacing a mobile's context
type UpdateContextOutput struct {
	Mobile *entities.Mobile
}

// EquipPhylacteryInput defines the request for equipping a phylactery. A nil
// Phylactery unequips it.
type EquipPhylacteryInput struct {
	MobileID   string
	Phylactery *entities.Phylactery
}

// EquipPhylacteryOutput defines the response for equipping a phylactery
type EquipPhylacteryOutput struct {
	Mobile *entities.Mobile
}
