package skillcheck

import (
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// gainInput is everything the gain chance depends on for one skill use
type gainInput struct {
	mobile  *entities.Mobile
	skill   *entities.Skill
	target  *entities.Target
	chance  float64
	success bool
	gainer  float64
	region  engine.RegionClass
}

// gainer picks the divisor for the headroom term. Guild members draw one of
// the guild gainers for their guild's skills.
func (e *Engine) gainer(m *entities.Mobile, skill entities.SkillName) float64 {
	t := &e.tuning.Gain
	if !m.IsPlayer() || m.Context.NPCGuild == entities.GuildNone {
		return t.DefaultGainer
	}
	if !e.guildSkills.Contains(m.Context.NPCGuild, skill) {
		return t.DefaultGainer
	}
	return t.GuildGainers[e.rand.IntRange(0, len(t.GuildGainers)-1)]
}

// gainChance composes the probability that a skill use produces a gain.
// The result may exceed 1.
func (e *Engine) gainChance(in gainInput) float64 {
	t := &e.tuning.Gain
	m := in.mobile
	info := in.skill.Info()

	var gc float64
	if in.skill.Cap > 0 {
		gc = float64(in.skill.Cap-in.skill.Base) / float64(in.skill.Cap)
	}
	gc /= in.gainer

	bonus := t.FailureBonus()
	if in.success {
		bonus = t.SuccessBonus
	}
	gc += (1 - in.chance) * bonus
	gc /= in.gainer

	gc *= info.GainFactor

	if hook, ok := e.bonusHooks[in.skill.Name]; ok {
		gc *= hook(m, in.target)
	}

	gc = max(gc, t.MinGainChance)

	if m.IsPet() {
		gc *= t.PetBonus
	}

	if !m.IsPlayer() {
		return gc
	}

	gc = e.applyPlayerState(gc, m)
	gc = e.applyRegionBonuses(gc, m, in.region)
	gc = e.applyDungeonBonus(gc, m, info, in.region)

	return gc
}

func (e *Engine) applyPlayerState(gc float64, m *entities.Mobile) float64 {
	t := &e.tuning.Gain

	if m.Context.Avatar {
		gc *= t.AvatarMultiplier
	} else {
		gc *= t.NormalMultiplier
	}

	gc = applyHunger(gc, m.Context.Hunger, t.HungerBands, t.OverfedMultiplier)

	if m.Context.SoulBound {
		gc *= 1 + e.phylactery.SkillGainBonus(m.ID)
	}

	if m.Context.FastGain > 1 {
		gc *= m.Context.FastGain
	}

	return gc
}

// applyHunger applies the first band whose max covers hunger; anything
// above the last band counts as overfed
func applyHunger(gc float64, hunger int, bands []config.HungerBand, overfed float64) float64 {
	for _, b := range bands {
		if hunger <= b.Max {
			return gc * b.Multiplier / b.Divisor
		}
	}
	return gc * overfed
}

func (e *Engine) applyRegionBonuses(gc float64, m *entities.Mobile, region engine.RegionClass) float64 {
	t := &e.tuning.Gain

	if region.Kind == engine.RegionRectangle {
		zone, ok := t.Zones[region.ZoneID]
		guild := m.Context.Guild
		if ok && guild != nil && !guild.Disbanded &&
			strings.Contains(strings.ToLower(guild.Name), strings.ToLower(zone.GuildName)) {
			gc *= zone.Bonus
		}
	}

	if m.Context.SoulBound && region.Kind == engine.RegionNamed {
		if bonus, ok := t.NamedBonuses[region.Name]; ok {
			gc *= bonus
		}
	}

	return gc
}

func (e *Engine) applyDungeonBonus(gc float64, m *entities.Mobile, info *entities.SkillInfo, region engine.RegionClass) float64 {
	if region.Kind != engine.RegionDungeon {
		return gc
	}

	t := &e.tuning.Gain
	bonus := e.regions.DifficultyLevel(m.Context.Location) / t.DifficultyDivisor

	factor := 1.0
	switch info.Dungeon {
	case entities.DungeonPassive:
		factor = 1 + bonus/t.PassiveDivisor
	case entities.DungeonActive:
		factor = 1 + bonus
	}

	if factor >= 1 {
		gc *= factor
	}
	return gc
}
