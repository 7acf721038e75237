package dungeon

import (
	"fmt"
	"math"
	"strings"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// Probability that a room contains an encounter
const encounterChance = 0.6

// generateEncounters rolls, for each room independently, whether it holds a
// combat encounter, and if so fills it with 1-3 creature groups from the
// biome's vocabulary. Creature counts and challenge rating scale with the
// difficulty multiplier.
func generateEncounters(rng *seedrand.Source, rooms []entities.Room, difficulty entities.Difficulty, biome entities.Biome) []entities.Encounter {
	encounters := []entities.Encounter{}

	creatures := creaturesFor(biome)
	baseCR := difficulty.Modifier()

	for _, room := range rooms {
		if !rng.Bernoulli(encounterChance) {
			continue
		}

		groupCount := rng.NextInt(1, 3)
		groups := make([]entities.CreatureGroup, 0, groupCount)
		for i := 0; i < groupCount; i++ {
			groups = append(groups, entities.CreatureGroup{
				Name:  seedrand.Choice(rng, creatures),
				Count: rng.NextInt(1, max(1, int(baseCR*2))),
			})
		}

		encounters = append(encounters, entities.Encounter{
			ID:              len(encounters),
			RoomID:          room.ID,
			Name:            fmt.Sprintf("%s Encounter", room.Type),
			Description:     encounterDescription(room.Type, groups),
			ChallengeRating: max(1, int(math.Round(baseCR*rng.Next()*3))),
			Creatures:       groups,
		})
	}

	return encounters
}

// encounterDescription builds template flavor text keyed by room type, with
// creature names interpolated. Singular or plural grammar follows the number
// of creature groups, not the total creature count.
func encounterDescription(roomType entities.RoomType, groups []entities.CreatureGroup) string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = strings.ToLower(g.Name)
	}

	article, verb := "Several", "guard"
	if len(groups) == 1 {
		article, verb = "A", "guards"
	}

	return fmt.Sprintf("%s %s %s %s this area.", roomFlavor(roomType), article, strings.Join(names, ", "), verb)
}
