// Package loot implements the loot table generator. Loot draws from an
// independent seeded stream (base seed + "_loot") so it diverges from the
// dungeon structure and NPC streams.
package loot

import (
	"fmt"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// Seed suffix that separates the loot stream from the other generators
const seedSuffix = "_loot"

// Probability that a room gets its own loot table
const roomLootChance = 0.7

// Generator produces loot tables for generated dungeons
type Generator struct{}

// New creates a loot generator
func New() *Generator {
	return &Generator{}
}

// Generate returns the dungeon's loot tables: the main treasure table, a
// room-flavored table for roughly 70% of rooms, and the encounter rewards
// table. The main and encounter tables are always present.
func (g *Generator) Generate(dungeon *entities.Dungeon, params entities.GenerationParams) []entities.LootTable {
	rng := seedrand.New(params.Seed + seedSuffix)

	tables := []entities.LootTable{}
	tables = append(tables, treasureTable(rng, "Main Treasure", dungeon.Difficulty, dungeon.Biome))

	for i := range dungeon.Rooms {
		if !rng.Bernoulli(roomLootChance) {
			continue
		}
		table := roomTable(rng, &dungeon.Rooms[i], dungeon.Difficulty, dungeon.Biome, i)
		if len(table.Items) > 0 {
			tables = append(tables, table)
		}
	}

	tables = append(tables, encounterTable(rng, dungeon.Difficulty, dungeon.Biome))

	return tables
}

// treasureTable builds the main treasure table: a difficulty-scaled number
// of treasure-biased items plus one currency entry.
func treasureTable(rng *seedrand.Source, name string, difficulty entities.Difficulty, biome entities.Biome) entities.LootTable {
	modifier := difficulty.Modifier()

	itemCount := int(float64(rng.NextInt(3, 8)) * modifier)
	items := make([]entities.LootItem, 0, itemCount+1)
	for i := 0; i < itemCount; i++ {
		items = append(items, generateItem(rng, biome, difficulty, biasTreasure))
	}

	gold := int(float64(rng.NextInt(50, 500)) * modifier)
	items = append(items, entities.LootItem{
		Name:        "Gold Pieces",
		Icon:        "🪙",
		Rarity:      entities.RarityCommon,
		Value:       fmt.Sprintf("%d gp", gold),
		Type:        "currency",
		Description: "Standard gold currency of the realm",
	})

	return entities.LootTable{
		ID:    "main_treasure",
		Name:  name,
		Type:  entities.LootTableTreasure,
		Items: items,
	}
}

// roomTable builds a room-flavored table whose item count and bias are keyed
// by room type.
func roomTable(rng *seedrand.Source, room *entities.Room, difficulty entities.Difficulty, biome entities.Biome, index int) entities.LootTable {
	config := roomLootFor(room.Type)

	items := make([]entities.LootItem, 0, config.items)
	for i := 0; i < config.items; i++ {
		items = append(items, generateItem(rng, biome, difficulty, config.bias))
	}

	roomID := room.ID
	return entities.LootTable{
		ID:     fmt.Sprintf("room_%d", index),
		Name:   fmt.Sprintf("%s Loot", room.Type),
		Type:   entities.LootTableRoom,
		RoomID: &roomID,
		Items:  items,
	}
}

// encounterTable builds the combat rewards table
func encounterTable(rng *seedrand.Source, difficulty entities.Difficulty, biome entities.Biome) entities.LootTable {
	itemCount := rng.NextInt(2, 5)

	items := make([]entities.LootItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, generateItem(rng, biome, difficulty, biasCombat))
	}

	return entities.LootTable{
		ID:    "encounter_loot",
		Name:  "Combat Rewards",
		Type:  entities.LootTableEncounter,
		Items: items,
	}
}

// generateItem draws one item. Draw order is fixed: rarity, type, icon,
// value, description, then the name parts.
func generateItem(rng *seedrand.Source, biome entities.Biome, difficulty entities.Difficulty, bias string) entities.LootItem {
	rarity := rollRarity(rng, difficulty)
	itemType := rollType(rng, bias)

	item := entities.LootItem{
		Icon:        rollIcon(rng, itemType),
		Rarity:      rarity,
		Type:        itemType,
		Value:       rollValue(rng, rarity, itemType),
		Description: rollDescription(rng, itemType),
	}
	item.Name = rollName(rng, item, biome)

	return item
}

// rollRarity draws the item rarity from the difficulty-keyed weight table
func rollRarity(rng *seedrand.Source, difficulty entities.Difficulty) entities.Rarity {
	return seedrand.WeightedChoice(rng, entities.Rarities, rarityWeightsFor(difficulty))
}

// rollType draws the item type from the bias-keyed vocabulary
func rollType(rng *seedrand.Source, bias string) string {
	return seedrand.Choice(rng, typesForBias(bias))
}

// rollIcon draws the item icon from the type-keyed emoji vocabulary
func rollIcon(rng *seedrand.Source, itemType string) string {
	return seedrand.Choice(rng, iconsFor(itemType))
}

// rollValue draws a base value for every rarity tier in order and keeps the
// one matching the item's rarity, then applies the type multiplier. Drawing
// the whole table keeps the draw sequence identical regardless of rarity.
func rollValue(rng *seedrand.Source, rarity entities.Rarity, itemType string) string {
	bases := []int{
		rng.NextInt(1, 50),
		rng.NextInt(51, 250),
		rng.NextInt(251, 1000),
		rng.NextInt(1001, 5000),
		rng.NextInt(5001, 25000),
	}

	base := bases[0]
	for i, r := range entities.Rarities {
		if r == rarity {
			base = bases[i]
			break
		}
	}

	value := int(float64(base) * typeMultiplierFor(itemType))
	return fmt.Sprintf("%d gp", value)
}

// rollDescription draws templated flavor text keyed by item type
func rollDescription(rng *seedrand.Source, itemType string) string {
	return seedrand.Choice(rng, descriptionsFor(itemType))
}

// rollName builds the item name: rarity prefix plus type-keyed base noun,
// with a biome-flavored suffix appended only for rare and better items.
func rollName(rng *seedrand.Source, item entities.LootItem, biome entities.Biome) string {
	prefix := seedrand.Choice(rng, prefixesFor(item.Rarity))
	base := seedrand.Choice(rng, nounsFor(item.Type))

	name := prefix + " " + base

	switch item.Rarity {
	case entities.RarityRare, entities.RarityEpic, entities.RarityLegendary:
		name += " " + seedrand.Choice(rng, suffixesFor(biome))
	}

	return name
}
