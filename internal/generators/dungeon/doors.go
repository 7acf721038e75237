package dungeon

import (
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// Probability that a room/corridor boundary cell becomes a door
const doorChance = 0.7

// placeDoors scans interior cells in row order and stochastically converts
// room/corridor boundary floor cells into doors. The Bernoulli draw happens
// only for candidate cells, so non-candidates never consume randomness.
func placeDoors(rng *seedrand.Source, grid entities.Grid, rooms []entities.Room, width, height int) {
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if grid[y][x] != entities.CellFloor {
				continue
			}
			if !isRoomCorridorBoundary(x, y, grid, rooms, width, height) {
				continue
			}
			if rng.Bernoulli(doorChance) {
				grid[y][x] = entities.CellDoor
			}
		}
	}
}

// isRoomCorridorBoundary reports whether the cell lies inside a room and has
// at least one orthogonal floor neighbor outside every room rectangle, i.e.
// the cell is where a corridor meets a room.
func isRoomCorridorBoundary(x, y int, grid entities.Grid, rooms []entities.Room, width, height int) bool {
	if !insideAnyRoom(x, y, rooms) {
		return false
	}

	neighbors := [4]entities.Point{
		{X: x - 1, Y: y},
		{X: x + 1, Y: y},
		{X: x, Y: y - 1},
		{X: x, Y: y + 1},
	}

	for _, n := range neighbors {
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			continue
		}
		if grid[n.Y][n.X] != entities.CellFloor {
			continue
		}
		if !insideAnyRoom(n.X, n.Y, rooms) {
			return true
		}
	}
	return false
}

func insideAnyRoom(x, y int, rooms []entities.Room) bool {
	for i := range rooms {
		if rooms[i].Contains(x, y) {
			return true
		}
	}
	return false
}
