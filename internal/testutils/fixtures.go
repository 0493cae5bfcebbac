package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

const (
	// TestPlayerID is the id of the default player fixture
	TestPlayerID = "mobile-test-001"

	// TestSkillCap is the total skill cap of the player fixture, in tenths
	TestSkillCap = 7000
	// TestStatCap is the stat cap of the player fixture
	TestStatCap = 225
	// TestPerSkillCap is the per-skill cap of every fixture skill, in tenths
	TestPerSkillCap = 1000
)

// TestEpoch is the creation time of every fixture
var TestEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// CreateTestPlayer creates a live player with all skills at zero and locked Up,
// stats 50/50/50, fed and standing somewhere with no special region.
func CreateTestPlayer() *entities.Mobile {
	return builders.NewMobileBuilder().
		WithID(TestPlayerID).
		WithName("Test Player").
		WithSkillCaps(TestSkillCap, TestPerSkillCap).
		WithStats(50, 50, 50, TestStatCap).
		WithHunger(20).
		WithLocation("Sosaria", 1000, 1000).
		WithTimestamps(TestEpoch).
		Build()
}

// CreateTestPet creates a live tamed pet
func CreateTestPet() *entities.Mobile {
	m := CreateTestPlayer()
	m.ID = "mobile-test-pet"
	m.Name = "Test Pet"
	m.Kind = entities.KindPet
	return m
}

// CreateTestCreature creates a wild creature
func CreateTestCreature() *entities.Mobile {
	m := CreateTestPlayer()
	m.ID = "mobile-test-creature"
	m.Name = "Test Creature"
	m.Kind = entities.KindCreature
	return m
}

// WithSkill sets a skill's base and returns the mobile for chaining
func WithSkill(m *entities.Mobile, name entities.SkillName, base int) *entities.Mobile {
	m.Skills.Get(name).Base = base
	return m
}
