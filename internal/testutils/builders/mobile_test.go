package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

func TestMobileBuilder(t *testing.T) {
	until := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	m := NewMobileBuilder().
		WithID("pet-1").
		WithKind(entities.KindPet).
		WithSkill(entities.Wrestling, 1200).
		WithSkillLock(entities.Tactics, entities.LockLocked).
		WithStatLock(entities.Int, entities.LockDown).
		WithNPCGuild(entities.GuildWarriors).
		WithAlacrity(entities.Wrestling, until).
		Dead().
		Build()

	assert.Equal(t, "pet-1", m.ID)
	assert.True(t, m.IsPet())
	assert.False(t, m.Alive)
	assert.Equal(t, 1200, m.Skills.Get(entities.Wrestling).Base, "bases are not clamped")
	assert.Equal(t, entities.LockLocked, m.Skills.Get(entities.Tactics).Lock)
	assert.Equal(t, entities.LockDown, m.Stats.Lock(entities.Int))
	assert.Equal(t, entities.GuildWarriors, m.Context.NPCGuild)
	assert.Equal(t, entities.Wrestling, m.Context.AcceleratedSkill)
	assert.Equal(t, until, m.Context.AcceleratedUntil)
}

func TestMobileBuilderDefaults(t *testing.T) {
	m := NewMobileBuilder().Build()

	assert.True(t, m.IsPlayer())
	assert.True(t, m.Alive)
	assert.Equal(t, 7000, m.Skills.Cap)
	assert.Equal(t, 1000, m.Skills.Get(entities.Alchemy).Cap)
	assert.Equal(t, 150, m.Stats.RawTotal())
	assert.Equal(t, 225, m.Stats.Cap)
}
