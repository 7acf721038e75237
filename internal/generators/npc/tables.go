package npc

import "github.com/dungeonforge/dungeon-api/internal/entities"

// Race and class vocabularies per biome, in draw order. Unrecognized biomes
// use the dungeon tables.

var biomeRaces = map[entities.Biome][]string{
	entities.BiomeDungeon: {"Human", "Dwarf", "Halfling", "Gnome", "Elf"},
	entities.BiomeCave:    {"Dwarf", "Goblin", "Kobold", "Duergar", "Svirfneblin"},
	entities.BiomeForest:  {"Elf", "Half-Elf", "Gnome", "Firbolg", "Centaur"},
	entities.BiomeCrypt:   {"Human", "Tiefling", "Aasimar", "Variant Human", "Dhampir"},
	entities.BiomeTemple:  {"Human", "Aasimar", "Dragonborn", "Tiefling", "Deva"},
	entities.BiomeTower:   {"Human", "Elf", "Gnome", "Tiefling", "Githyanki"},
}

var biomeClasses = map[entities.Biome][]string{
	entities.BiomeDungeon: {"Fighter", "Rogue", "Wizard", "Cleric", "Ranger"},
	entities.BiomeCave:    {"Barbarian", "Ranger", "Druid", "Fighter", "Rogue"},
	entities.BiomeForest:  {"Ranger", "Druid", "Bard", "Sorcerer", "Monk"},
	entities.BiomeCrypt:   {"Cleric", "Paladin", "Warlock", "Necromancer", "Death Knight"},
	entities.BiomeTemple:  {"Cleric", "Paladin", "Monk", "Divine Soul", "Celestial"},
	entities.BiomeTower:   {"Wizard", "Sorcerer", "Warlock", "Artificer", "Arcane Trickster"},
}

func racesFor(biome entities.Biome) []string {
	if races, ok := biomeRaces[biome]; ok {
		return races
	}
	return biomeRaces[entities.BiomeDungeon]
}

func classesFor(biome entities.Biome) []string {
	if classes, ok := biomeClasses[biome]; ok {
		return classes
	}
	return biomeClasses[entities.BiomeDungeon]
}

var appearances = []string{
	"weathered and battle-scarred",
	"young and eager",
	"mysterious and hooded",
	"well-dressed and refined",
	"grizzled and experienced",
	"nervous and twitchy",
	"calm and composed",
	"energetic and enthusiastic",
}

var behaviors = []string{
	"speaks in riddles",
	"constantly sharpens weapons",
	"studies ancient tomes",
	"mutters prayers under their breath",
	"watches the shadows carefully",
	"hums old tavern songs",
	"counts coins obsessively",
	"tells tales of past adventures",
}

var biomeLocations = map[entities.Biome]string{
	entities.BiomeDungeon: "deep within these stone corridors",
	entities.BiomeCave:    "in the depths of this cavern system",
	entities.BiomeForest:  "among the ancient trees",
	entities.BiomeCrypt:   "within these hallowed halls",
	entities.BiomeTemple:  "before the sacred altar",
	entities.BiomeTower:   "high in this mystical spire",
}

func locationFor(biome entities.Biome) string {
	if location, ok := biomeLocations[biome]; ok {
		return location
	}
	return biomeLocations[entities.BiomeDungeon]
}

var personalities = []string{
	"Brave and honorable",
	"Cunning and opportunistic",
	"Wise and contemplative",
	"Cheerful and optimistic",
	"Brooding and mysterious",
	"Ambitious and driven",
	"Loyal and dependable",
	"Eccentric and unpredictable",
	"Cautious and paranoid",
	"Generous and kind-hearted",
}

var biomeMotivations = map[entities.Biome][]string{
	entities.BiomeDungeon: {
		"Seeks ancient treasure hidden within",
		"Guards family secrets buried here",
		"Hunts the monster that destroyed their village",
		"Researches the dungeon's dark history",
	},
	entities.BiomeCave: {
		"Protects the natural balance of the caves",
		"Searches for rare minerals and gems",
		"Hides from surface world persecution",
		"Studies unique cave ecosystems",
	},
	entities.BiomeForest: {
		"Protects the sacred grove from intruders",
		"Seeks harmony between nature and civilization",
		"Hunts poachers and defilers",
		"Guards ancient druidic secrets",
	},
	entities.BiomeCrypt: {
		"Seeks to put restless spirits to rest",
		"Protects sacred burial grounds",
		"Hunts undead abominations",
		"Researches necromantic mysteries",
	},
	entities.BiomeTemple: {
		"Serves their deity faithfully",
		"Protects holy relics and artifacts",
		"Seeks divine guidance and wisdom",
		"Battles unholy corruption",
	},
	entities.BiomeTower: {
		"Pursues arcane knowledge and power",
		"Guards magical secrets and spells",
		"Conducts mystical experiments",
		"Seeks to unlock cosmic mysteries",
	},
}

func motivationsFor(biome entities.Biome) []string {
	if motivations, ok := biomeMotivations[biome]; ok {
		return motivations
	}
	return biomeMotivations[entities.BiomeDungeon]
}

var secrets = []string{
	"Knows the location of a hidden passage",
	"Carries a map to ancient treasure",
	"Is actually royalty in disguise",
	"Made a pact with a powerful entity",
	"Possesses a cursed magical item",
	"Is the last of their bloodline",
	"Knows the dungeon's true purpose",
	"Has seen the future in visions",
	"Is secretly working for the enemy",
	"Guards the key to a great mystery",
}

// Avatars keyed by race then class, with per-race and global defaults
var avatars = map[string]map[string]string{
	"Human":    {"Fighter": "🛡️", "Rogue": "🗡️", "Wizard": "🔮", "Cleric": "⚕️", "default": "👤"},
	"Elf":      {"Ranger": "🏹", "Wizard": "🔮", "Rogue": "🗡️", "default": "🧝"},
	"Dwarf":    {"Fighter": "⚒️", "Cleric": "⚕️", "Barbarian": "🪓", "default": "👨‍🦲"},
	"Halfling": {"Rogue": "🗡️", "Bard": "🎵", "default": "👶"},
	"Gnome":    {"Wizard": "🔮", "Artificer": "⚙️", "default": "👴"},
	"Goblin":   {"default": "👺"},
	"Kobold":   {"default": "🦎"},
	"Tiefling": {"Warlock": "😈", "default": "👹"},
}

const defaultAvatar = "👤"

// avatarFor resolves an avatar by race and class, falling back first to the
// race default, then to the global default.
func avatarFor(race, class string) string {
	byClass, ok := avatars[race]
	if !ok {
		return defaultAvatar
	}
	if avatar, ok := byClass[class]; ok {
		return avatar
	}
	if avatar, ok := byClass["default"]; ok {
		return avatar
	}
	return defaultAvatar
}
