// Package npc implements the NPC generator. NPCs draw from an independent
// seeded stream (base seed + "_npcs") so their randomness diverges from the
// dungeon structure and loot streams.
package npc

import (
	"fmt"
	"math"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// Seed suffix that separates the NPC stream from the other generators
const seedSuffix = "_npcs"

// Fraction of rooms that yields an NPC
const npcsPerRoom = 0.4

// Generator produces NPC rosters for generated dungeons
type Generator struct{}

// New creates an NPC generator
func New() *Generator {
	return &Generator{}
}

// Generate returns the NPC roster for a dungeon. It returns an empty roster
// unless AI enhancement is enabled. The count derives from the number of
// rooms actually placed; NPCs are not bound to specific rooms.
func (g *Generator) Generate(dungeon *entities.Dungeon, params entities.GenerationParams) []entities.NPC {
	if !params.EnableAI {
		return []entities.NPC{}
	}

	rng := seedrand.New(params.Seed + seedSuffix)

	count := int(float64(len(dungeon.Rooms)) * npcsPerRoom)
	npcs := make([]entities.NPC, 0, count)
	for i := 0; i < count; i++ {
		npcs = append(npcs, generateNPC(rng, dungeon.Biome, dungeon.Difficulty, i))
	}

	return npcs
}

// generateNPC draws one character: race, class, and name first, then the
// level and hit-die rolls, then the flavor picks. Stats scale with the
// difficulty modifier; CR is rounded to the nearest quarter point.
func generateNPC(rng *seedrand.Source, biome entities.Biome, difficulty entities.Difficulty, id int) entities.NPC {
	race := seedrand.Choice(rng, racesFor(biome))
	class := seedrand.Choice(rng, classesFor(biome))
	name := generateName(rng, race)

	modifier := difficulty.NPCModifier()
	level := max(1, int(float64(rng.NextInt(1, 8))*modifier))

	baseAC := 10 + level/2
	baseHP := 8 + level*rng.NextInt(4, 8)
	cr := math.Max(0.125, float64(level)/4)

	return entities.NPC{
		ID:          id,
		Name:        name,
		Race:        race,
		Class:       class,
		Level:       level,
		AC:          int(float64(baseAC) * modifier),
		HP:          int(float64(baseHP) * modifier),
		CR:          math.Round(cr*modifier*4) / 4,
		Description: describe(rng, name, race, class, biome),
		Avatar:      avatarFor(race, class),
		Personality: seedrand.Choice(rng, personalities),
		Motivation:  seedrand.Choice(rng, motivationsFor(biome)),
		Secrets:     seedrand.Choice(rng, secrets),
	}
}

// describe builds the NPC's flavor paragraph; it consumes two draws, one for
// appearance and one for behavior.
func describe(rng *seedrand.Source, name, race, class string, biome entities.Biome) string {
	appearance := seedrand.Choice(rng, appearances)
	behavior := seedrand.Choice(rng, behaviors)

	return fmt.Sprintf("%s is a %s %s %s found %s. They %s and seem to have important knowledge about this place.",
		name, appearance, race, class, locationFor(biome), behavior)
}

// generateName draws a first and last name from the race's name tables,
// falling back to the human tables for unlisted races.
func generateName(rng *seedrand.Source, race string) string {
	table := nameTableFor(race)
	first := seedrand.Choice(rng, table.first)
	last := seedrand.Choice(rng, table.last)
	return first + " " + last
}
