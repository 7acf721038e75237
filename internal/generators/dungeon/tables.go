package dungeon

import "github.com/dungeonforge/dungeon-api/internal/entities"

// Creature vocabularies per biome, in draw order
var biomeCreatures = map[entities.Biome][]string{
	entities.BiomeDungeon: {"Goblin", "Skeleton", "Orc", "Troll", "Dragon"},
	entities.BiomeCave:    {"Bat", "Bear", "Kobold", "Owlbear", "Bulette"},
	entities.BiomeForest:  {"Wolf", "Dryad", "Treant", "Dire Wolf", "Green Dragon"},
	entities.BiomeCrypt:   {"Zombie", "Wraith", "Lich", "Mummy", "Vampire"},
	entities.BiomeTemple:  {"Celestial", "Demon", "Angel", "Paladin", "Cleric"},
	entities.BiomeTower:   {"Mage", "Elemental", "Gargoyle", "Wizard", "Archmage"},
}

// creaturesFor returns the creature vocabulary for a biome. Unrecognized
// biomes fall back to the dungeon vocabulary; the fallback is part of the
// contract, not an accident.
func creaturesFor(biome entities.Biome) []string {
	if creatures, ok := biomeCreatures[biome]; ok {
		return creatures
	}
	return biomeCreatures[entities.BiomeDungeon]
}

// Encounter flavor text per room type
var roomFlavors = map[entities.RoomType]string{
	entities.RoomChamber:    "A dimly lit chamber where danger lurks in the shadows.",
	entities.RoomHall:       "The echoing hall stretches before you, inhabited by hostile forces.",
	entities.RoomTreasury:   "Gold and gems glitter in this treasure room, but guardians protect the hoard.",
	entities.RoomBarracks:   "Old bunks and weapons racks suggest this was once a military quarters.",
	entities.RoomLibrary:    "Ancient tomes line the shelves of this forgotten library.",
	entities.RoomArmory:     "Weapons and armor hang from the walls, some still serviceable.",
	entities.RoomKitchen:    "The smell of old food and decay fills this abandoned kitchen.",
	entities.RoomThroneRoom: "A grand throne dominates this royal chamber.",
	entities.RoomChapel:     "Sacred symbols and altar suggest this was once a holy place.",
	entities.RoomLaboratory: "Bubbling potions and strange apparatus fill this research chamber.",
}

// roomFlavor returns encounter flavor text for a room type, defaulting to
// the chamber text for unlisted types.
func roomFlavor(roomType entities.RoomType) string {
	if flavor, ok := roomFlavors[roomType]; ok {
		return flavor
	}
	return roomFlavors[entities.RoomChamber]
}
