// Package dungeon implements the dungeon structure generator: seeded room
// placement, spanning-tree corridor connection, door placement, and per-room
// encounter generation.
//
// The whole pipeline is a pure function of its parameters. One seeded random
// source drives every stage in a fixed order, so identical parameters always
// reproduce the identical dungeon.
package dungeon

import (
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// Generator produces dungeon structures from generation parameters
type Generator struct{}

// New creates a dungeon generator
func New() *Generator {
	return &Generator{}
}

// Generate runs the full structure pipeline: place rooms, stamp them onto
// the grid, carve corridors, place doors, roll encounters. Stage order is
// load-bearing; later stages read the cumulative grid state of earlier ones.
func (g *Generator) Generate(params entities.GenerationParams) *entities.Dungeon {
	rng := seedrand.New(params.Seed)

	grid := entities.NewGrid(params.Width, params.Height)

	rooms := placeRooms(rng, params.Width, params.Height, params.RoomCount)
	stampRooms(grid, rooms, params.Width, params.Height)

	corridors := carveCorridors(rng, rooms, grid, params.Width, params.Height, params.CorridorWidth)

	placeDoors(rng, grid, rooms, params.Width, params.Height)

	encounters := generateEncounters(rng, rooms, params.Difficulty, params.Biome)

	return &entities.Dungeon{
		Width:      params.Width,
		Height:     params.Height,
		Grid:       grid,
		Rooms:      rooms,
		Corridors:  corridors,
		Encounters: encounters,
		Biome:      params.Biome,
		Difficulty: params.Difficulty,
	}
}
