package entities

import (
	"fmt"
	"strings"
)

// NPCGuild is the trade guild a player may belong to
type NPCGuild int

const (
	GuildNone NPCGuild = iota
	GuildMages
	GuildWarriors
	GuildThieves
	GuildBards
	GuildBlacksmiths
	GuildNecromancers
	GuildDruids
	GuildCartographers
	GuildAssassins
	GuildMerchants
	GuildTailors
	GuildCarpenters
	GuildCulinarians
	GuildTinkers
	GuildArchers
	GuildAlchemists
	GuildRangers
	GuildLibrarians
	GuildFishermen
	GuildHealers
	GuildMiners
)

var guildNames = [...]string{
	"none", "mages", "warriors", "thieves", "bards", "blacksmiths",
	"necromancers", "druids", "cartographers", "assassins", "merchants",
	"tailors", "carpenters", "culinarians", "tinkers", "archers",
	"alchemists", "rangers", "librarians", "fishermen", "healers", "miners",
}

func (g NPCGuild) String() string {
	if g < 0 || int(g) >= len(guildNames) {
		return fmt.Sprintf("NPCGuild(%d)", int(g))
	}
	return guildNames[g]
}

// MarshalText implements encoding.TextMarshaler
func (g NPCGuild) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= len(guildNames) {
		return nil, fmt.Errorf("unknown guild %d", int(g))
	}
	return []byte(guildNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *NPCGuild) UnmarshalText(text []byte) error {
	for i, name := range guildNames {
		if strings.EqualFold(name, string(text)) {
			*g = NPCGuild(i)
			return nil
		}
	}
	return fmt.Errorf("unknown guild %q", string(text))
}

// GuildSkillTable maps a guild to the skills its members train faster
type GuildSkillTable map[NPCGuild]map[SkillName]struct{}

// Contains reports whether skill is a guild skill of g
func (t GuildSkillTable) Contains(g NPCGuild, skill SkillName) bool {
	skills, ok := t[g]
	if !ok {
		return false
	}
	_, ok = skills[skill]
	return ok
}

func skillSet(names ...SkillName) map[SkillName]struct{} {
	out := make(map[SkillName]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// DefaultGuildSkills returns a fresh copy of the stock guild table
func DefaultGuildSkills() GuildSkillTable {
	return GuildSkillTable{
		GuildMages:         skillSet(EvalInt, Magery, Meditation, Inscribe, Alchemy),
		GuildWarriors:      skillSet(Fencing, Macing, Parry, Swords, Tactics, Healing, Anatomy, Chivalry),
		GuildThieves:       skillSet(Hiding, Lockpicking, Snooping, Stealing, Stealth, DetectHidden, Ninjitsu),
		GuildBards:         skillSet(Discordance, Musicianship, Peacemaking, Provocation),
		GuildBlacksmiths:   skillSet(Blacksmith, ArmsLore, Mining, Tinkering),
		GuildNecromancers:  skillSet(Forensics, Necromancy, SpiritSpeak, Alchemy, Inscribe),
		GuildDruids:        skillSet(AnimalLore, AnimalTaming, Herding, Veterinary, Cooking, Camping, Tracking),
		GuildCartographers: skillSet(Cartography, RemoveTrap, Lockpicking, Fishing),
		GuildAssassins:     skillSet(Fencing, Hiding, Poisoning, Stealth, Archery, Alchemy, Bushido),
		GuildMerchants:     skillSet(ItemID, ArmsLore, TasteID),
		GuildTailors:       skillSet(Tailoring, Tinkering),
		GuildCarpenters:    skillSet(Carpentry, Lumberjacking, Fletching, Tinkering),
		GuildCulinarians:   skillSet(Cooking, TasteID, Tinkering),
		GuildTinkers:       skillSet(Tinkering, Fletching, Carpentry, Tailoring),
		GuildArchers:       skillSet(Archery, Fletching, Tactics, Chivalry),
		GuildAlchemists:    skillSet(Alchemy, Cooking, TasteID),
		GuildRangers:       skillSet(Camping, Tracking),
		GuildLibrarians:    skillSet(ItemID, Inscribe),
		GuildFishermen:     skillSet(Fishing),
		GuildHealers:       skillSet(Anatomy, Healing, Veterinary),
		GuildMiners:        skillSet(Mining, ArmsLore, Blacksmith, Tinkering),
	}
}
