package dungeon

import (
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

const (
	minRoomSize = 4
	maxRoomSize = 8

	// Rooms may not come within this many cells of each other
	roomPadding = 2

	// Attempts per requested room before giving up
	attemptsPerRoom = 10
)

// placeRooms rejection-samples up to roomCount non-overlapping rooms. Every
// attempt consumes exactly five draws (width, height, x, y, type) whether or
// not the candidate is accepted, which keeps the draw sequence stable.
// Exhausting the attempt budget yields fewer rooms than requested; that is a
// documented degraded-success outcome, not an error.
func placeRooms(rng *seedrand.Source, width, height, roomCount int) []entities.Room {
	rooms := make([]entities.Room, 0, roomCount)
	attempts := roomCount * attemptsPerRoom

	for i := 0; i < attempts && len(rooms) < roomCount; i++ {
		roomWidth := rng.NextInt(minRoomSize, maxRoomSize)
		roomHeight := rng.NextInt(minRoomSize, maxRoomSize)
		x := rng.NextInt(1, width-roomWidth-1)
		y := rng.NextInt(1, height-roomHeight-1)

		candidate := entities.Room{
			ID:     len(rooms),
			X:      x,
			Y:      y,
			Width:  roomWidth,
			Height: roomHeight,
			Type:   seedrand.Choice(rng, entities.RoomTypes),
		}

		if !overlapsAny(candidate, rooms) {
			rooms = append(rooms, candidate)
		}
	}

	return rooms
}

// overlapsAny checks the candidate against all accepted rooms with the
// padding margin applied on every side.
func overlapsAny(candidate entities.Room, rooms []entities.Room) bool {
	for _, room := range rooms {
		if candidate.X < room.X+room.Width+roomPadding &&
			candidate.X+candidate.Width+roomPadding > room.X &&
			candidate.Y < room.Y+room.Height+roomPadding &&
			candidate.Y+candidate.Height+roomPadding > room.Y {
			return true
		}
	}
	return false
}

// stampRooms writes each room's floor cells onto the grid and marks its
// geometric center (floored), recording the center on the room itself.
func stampRooms(grid entities.Grid, rooms []entities.Room, width, height int) {
	for i := range rooms {
		room := &rooms[i]

		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				if x >= 0 && x < width && y >= 0 && y < height {
					grid[y][x] = entities.CellFloor
				}
			}
		}

		centerX := room.X + room.Width/2
		centerY := room.Y + room.Height/2
		if centerX >= 0 && centerX < width && centerY >= 0 && centerY < height {
			grid[centerY][centerX] = entities.CellRoomCenter
			room.CenterX = centerX
			room.CenterY = centerY
		}
	}
}
