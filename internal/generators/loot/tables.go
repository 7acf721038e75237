package loot

import "github.com/dungeonforge/dungeon-api/internal/entities"

// Rarity weights indexed like entities.Rarities (common through legendary).
// The tiers are designed to sum to 100 but nothing depends on that.
var rarityWeights = map[entities.Difficulty][]float64{
	entities.DifficultyEasy:   {70, 25, 4, 1, 0},
	entities.DifficultyMedium: {50, 30, 15, 4, 1},
	entities.DifficultyHard:   {30, 35, 25, 8, 2},
	entities.DifficultyDeadly: {20, 30, 30, 15, 5},
}

func rarityWeightsFor(difficulty entities.Difficulty) []float64 {
	if weights, ok := rarityWeights[difficulty]; ok {
		return weights
	}
	return rarityWeights[entities.DifficultyMedium]
}

// Item biases
const (
	biasTreasure    = "treasure"
	biasValuable    = "valuable"
	biasWeapons     = "weapons"
	biasScrolls     = "scrolls"
	biasConsumables = "consumables"
	biasEquipment   = "equipment"
	biasHoly        = "holy"
	biasMagical     = "magical"
	biasRoyal       = "royal"
	biasCombat      = "combat"
	biasGeneral     = "general"
)

var biasTypes = map[string][]string{
	biasTreasure:    {"gem", "jewelry", "art", "currency"},
	biasValuable:    {"gem", "jewelry", "art"},
	biasWeapons:     {"weapon", "armor", "shield"},
	biasScrolls:     {"scroll", "book", "map"},
	biasConsumables: {"potion", "food", "component"},
	biasEquipment:   {"tool", "gear", "weapon", "armor"},
	biasHoly:        {"relic", "symbol", "scroll"},
	biasMagical:     {"wand", "staff", "orb", "potion", "scroll"},
	biasRoyal:       {"jewelry", "art", "weapon", "crown"},
	biasCombat:      {"weapon", "armor", "potion"},
	biasGeneral:     {"weapon", "armor", "potion", "gem", "tool"},
}

func typesForBias(bias string) []string {
	if types, ok := biasTypes[bias]; ok {
		return types
	}
	return biasTypes[biasGeneral]
}

// roomLootConfig sets how many items a room table holds and which bias
// flavors them
type roomLootConfig struct {
	items int
	bias  string
}

var roomLootConfigs = map[entities.RoomType]roomLootConfig{
	entities.RoomTreasury:   {items: 4, bias: biasValuable},
	entities.RoomArmory:     {items: 3, bias: biasWeapons},
	entities.RoomLibrary:    {items: 2, bias: biasScrolls},
	entities.RoomKitchen:    {items: 2, bias: biasConsumables},
	entities.RoomBarracks:   {items: 3, bias: biasEquipment},
	entities.RoomChapel:     {items: 2, bias: biasHoly},
	entities.RoomLaboratory: {items: 3, bias: biasMagical},
	entities.RoomThroneRoom: {items: 4, bias: biasRoyal},
	entities.RoomChamber:    {items: 2, bias: biasGeneral},
	entities.RoomHall:       {items: 1, bias: biasGeneral},
}

func roomLootFor(roomType entities.RoomType) roomLootConfig {
	if config, ok := roomLootConfigs[roomType]; ok {
		return config
	}
	return roomLootConfigs[entities.RoomChamber]
}

var typeIcons = map[string][]string{
	"weapon":    {"⚔️", "🗡️", "🏹", "🔨", "🪓"},
	"armor":     {"🛡️", "🥾", "👕", "👑", "🧤"},
	"shield":    {"🛡️"},
	"potion":    {"🧪", "🍶", "🥤"},
	"scroll":    {"📜", "📋", "📃"},
	"book":      {"📖", "📚", "📕"},
	"gem":       {"💎", "💍", "🔮", "💠"},
	"jewelry":   {"💍", "📿", "👑", "⌚"},
	"art":       {"🎨", "🏺", "🪞", "🕯️"},
	"currency":  {"🪙", "💰", "💵"},
	"tool":      {"🔧", "⚒️", "🪚", "🔑"},
	"gear":      {"🎒", "🪢", "🧭"},
	"wand":      {"🪄", "✨"},
	"staff":     {"🪄", "🦯"},
	"orb":       {"🔮", "💎"},
	"relic":     {"✨", "🏺", "📿"},
	"symbol":    {"✝️", "☪️", "🕎", "☯️"},
	"map":       {"🗺️", "📜"},
	"component": {"🌿", "🦴", "⭐", "🔥"},
	"food":      {"🍖", "🍞", "🧀", "🍯"},
	"crown":     {"👑", "💎"},
}

var unknownTypeIcons = []string{"❓"}

func iconsFor(itemType string) []string {
	if icons, ok := typeIcons[itemType]; ok {
		return icons
	}
	return unknownTypeIcons
}

// Value multipliers by item type; unlisted types multiply by 1.0
var typeMultipliers = map[string]float64{
	"weapon":   1.5,
	"armor":    1.3,
	"jewelry":  2.0,
	"art":      1.8,
	"gem":      2.5,
	"potion":   0.8,
	"scroll":   1.2,
	"currency": 1.0,
}

func typeMultiplierFor(itemType string) float64 {
	if multiplier, ok := typeMultipliers[itemType]; ok {
		return multiplier
	}
	return 1.0
}

var rarityPrefixes = map[entities.Rarity][]string{
	entities.RarityCommon:    {"Simple", "Basic", "Plain", "Ordinary", "Standard"},
	entities.RarityUncommon:  {"Fine", "Quality", "Masterwork", "Superior", "Elegant"},
	entities.RarityRare:      {"Exquisite", "Enchanted", "Mystical", "Ancient", "Noble"},
	entities.RarityEpic:      {"Legendary", "Mythical", "Divine", "Celestial", "Draconic"},
	entities.RarityLegendary: {"Artifact", "Godly", "Eternal", "Ultimate", "Transcendent"},
}

func prefixesFor(rarity entities.Rarity) []string {
	if prefixes, ok := rarityPrefixes[rarity]; ok {
		return prefixes
	}
	return rarityPrefixes[entities.RarityCommon]
}

var typeNouns = map[string][]string{
	"weapon":  {"Sword", "Blade", "Dagger", "Axe", "Mace", "Bow", "Crossbow", "Spear", "Hammer"},
	"armor":   {"Chainmail", "Leather Armor", "Plate Mail", "Robes", "Cloak", "Boots", "Gauntlets"},
	"shield":  {"Shield", "Buckler", "Tower Shield"},
	"potion":  {"Healing Potion", "Mana Potion", "Elixir", "Philter", "Draught"},
	"scroll":  {"Spell Scroll", "Map", "Deed", "Letter", "Contract"},
	"book":    {"Spellbook", "Tome", "Grimoire", "Manual", "Chronicle"},
	"gem":     {"Ruby", "Emerald", "Sapphire", "Diamond", "Opal", "Amethyst"},
	"jewelry": {"Ring", "Necklace", "Bracelet", "Amulet", "Circlet"},
	"art":     {"Painting", "Sculpture", "Vase", "Tapestry", "Mirror"},
	"tool":    {"Lockpicks", "Rope", "Grappling Hook", "Crowbar", "Hammer"},
	"wand":    {"Wand", "Rod"},
	"staff":   {"Staff", "Quarterstaff"},
	"orb":     {"Crystal Orb", "Scrying Orb"},
	"crown":   {"Crown", "Tiara", "Diadem"},
}

var unknownTypeNouns = []string{"Item"}

func nounsFor(itemType string) []string {
	if nouns, ok := typeNouns[itemType]; ok {
		return nouns
	}
	return unknownTypeNouns
}

var biomeSuffixes = map[entities.Biome][]string{
	entities.BiomeDungeon: {"of the Deep", "of Shadows", "of Stone"},
	entities.BiomeCave:    {"of the Depths", "of Crystal", "of Echoes"},
	entities.BiomeForest:  {"of the Grove", "of Nature", "of the Wild"},
	entities.BiomeCrypt:   {"of the Dead", "of Souls", "of Eternity"},
	entities.BiomeTemple:  {"of Light", "of Faith", "of the Divine"},
	entities.BiomeTower:   {"of Power", "of Wisdom", "of the Arcane"},
}

func suffixesFor(biome entities.Biome) []string {
	if suffixes, ok := biomeSuffixes[biome]; ok {
		return suffixes
	}
	return biomeSuffixes[entities.BiomeDungeon]
}

var typeDescriptions = map[string][]string{
	"weapon": {
		"A well-balanced weapon with a keen edge.",
		"This weapon bears the marks of many battles.",
		"Crafted with exceptional skill and attention to detail.",
		"The metal gleams with an otherworldly sheen.",
	},
	"armor": {
		"Sturdy protection that has weathered many conflicts.",
		"This armor shows signs of masterful craftsmanship.",
		"Lightweight yet durable, perfect for adventurers.",
		"Enhanced with protective enchantments.",
	},
	"potion": {
		"A bubbling liquid that glows faintly in the dark.",
		"The contents swirl mysteriously within the bottle.",
		"Smells of herbs and magical ingredients.",
		"Crafted by a skilled alchemist.",
	},
	"gem": {
		"This precious stone catches light beautifully.",
		"A flawless gem of exceptional clarity.",
		"The facets seem to hold inner fire.",
		"Valued by collectors and jewelers alike.",
	},
	"scroll": {
		"Ancient parchment covered in mystic symbols.",
		"The writing glows faintly with magical power.",
		"Contains knowledge from a bygone age.",
		"Carefully preserved despite its age.",
	},
}

// descriptionsFor returns flavor text candidates for an item type; unlisted
// types share the weapon descriptions.
func descriptionsFor(itemType string) []string {
	if descriptions, ok := typeDescriptions[itemType]; ok {
		return descriptions
	}
	return typeDescriptions["weapon"]
}
