package dungeon

import (
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/pkg/seedrand"
)

// connection is an edge between two rooms by ID
type connection struct {
	from int
	to   int
}

// carveCorridors connects every room through a minimum spanning tree over
// room centers, carving an L-shaped corridor per tree edge, then carves a
// few extra loop edges between random room pairs. Only the tree edges
// produce Corridor records; the loop edges mutate the grid anonymously.
func carveCorridors(rng *seedrand.Source, rooms []entities.Room, grid entities.Grid, width, height, corridorWidth int) []entities.Corridor {
	corridors := []entities.Corridor{}

	if len(rooms) < 2 {
		return corridors
	}

	connections := spanningTree(rng, rooms)

	for _, conn := range connections {
		from := rooms[conn.from]
		to := rooms[conn.to]
		corridor := carveCorridor(from.CenterX, from.CenterY, to.CenterX, to.CenterY, grid, width, height, corridorWidth)
		corridors = append(corridors, corridor)
	}

	extraConnections := min(2, len(rooms)/3)
	for i := 0; i < extraConnections; i++ {
		a := rng.NextInt(0, len(rooms)-1)
		b := rng.NextInt(0, len(rooms)-1)

		if a == b || directlyConnected(connections, rooms[a].ID, rooms[b].ID) {
			continue
		}

		carveCorridor(rooms[a].CenterX, rooms[a].CenterY, rooms[b].CenterX, rooms[b].CenterY, grid, width, height, corridorWidth)
	}

	return corridors
}

// spanningTree builds an MST over room centers with Manhattan distance,
// Prim-style: grow from room 0, always taking the globally shortest edge
// between the connected and unconnected sets. Strict less-than keeps the
// first edge found on ties, so the tree is deterministic for a fixed room
// ordering. Both sets preserve insertion order.
func spanningTree(rng *seedrand.Source, rooms []entities.Room) []connection {
	connections := make([]connection, 0, len(rooms)-1)

	connected := []int{0}
	unconnected := make([]int, 0, len(rooms)-1)
	for _, room := range rooms[1:] {
		unconnected = append(unconnected, room.ID)
	}

	for len(unconnected) > 0 {
		best := connection{from: -1, to: -1}
		bestDistance := -1

		for _, ci := range connected {
			for _, ui := range unconnected {
				distance := manhattan(rooms[ci], rooms[ui])
				if bestDistance < 0 || distance < bestDistance {
					bestDistance = distance
					best = connection{from: ci, to: ui}
				}
			}
		}

		if best.from >= 0 {
			connections = append(connections, best)
			connected = append(connected, best.to)
			unconnected = remove(unconnected, best.to)
		} else {
			// Cannot happen while rooms remain unconnected; kept so a
			// malformed state still terminates with a connected graph.
			to := unconnected[0]
			from := connected[rng.NextInt(0, len(connected)-1)]
			connections = append(connections, connection{from: from, to: to})
			connected = append(connected, to)
			unconnected = remove(unconnected, to)
		}
	}

	return connections
}

func manhattan(a, b entities.Room) int {
	return abs(a.CenterX-b.CenterX) + abs(a.CenterY-b.CenterY)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// remove deletes the first occurrence of v, preserving order
func remove(ids []int, v int) []int {
	for i, id := range ids {
		if id == v {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func directlyConnected(connections []connection, a, b int) bool {
	for _, conn := range connections {
		if (conn.from == a && conn.to == b) || (conn.from == b && conn.to == a) {
			return true
		}
	}
	return false
}

// carveCorridor carves an L-shaped corridor between two centers. The first
// leg runs along the axis with the larger coordinate delta (ties go
// horizontal-first), at the source's perpendicular coordinate; the second
// leg runs at the destination's. Carving is idempotent: only wall cells are
// converted, and only converted cells enter the path.
func carveCorridor(x1, y1, x2, y2 int, grid entities.Grid, width, height, corridorWidth int) entities.Corridor {
	path := []entities.Point{}
	horizontalFirst := abs(x2-x1) >= abs(y2-y1)

	carveHorizontal := func(atY int) {
		startX, endX := minMax(x1, x2)
		for x := startX; x <= endX; x++ {
			for w := 0; w < corridorWidth; w++ {
				y := atY + w - corridorWidth/2
				if x >= 0 && x < width && y >= 0 && y < height && grid[y][x] == entities.CellWall {
					grid[y][x] = entities.CellFloor
					path = append(path, entities.Point{X: x, Y: y})
				}
			}
		}
	}

	carveVertical := func(atX int) {
		startY, endY := minMax(y1, y2)
		for y := startY; y <= endY; y++ {
			for w := 0; w < corridorWidth; w++ {
				x := atX + w - corridorWidth/2
				if x >= 0 && x < width && y >= 0 && y < height && grid[y][x] == entities.CellWall {
					grid[y][x] = entities.CellFloor
					path = append(path, entities.Point{X: x, Y: y})
				}
			}
		}
	}

	orientation := entities.OrientationHorizontalFirst
	if horizontalFirst {
		carveHorizontal(y1)
		carveVertical(x2)
	} else {
		orientation = entities.OrientationVerticalFirst
		carveVertical(x1)
		carveHorizontal(y2)
	}

	return entities.Corridor{
		Start:       entities.Point{X: x1, Y: y1},
		End:         entities.Point{X: x2, Y: y2},
		Path:        path,
		Width:       corridorWidth,
		Orientation: orientation,
	}
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
