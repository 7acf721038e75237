// Package entities provides core data structures for dungeon-api.
package entities

// CellType encodes what occupies a single grid cell
type CellType int

// Grid cell codes. The numeric values are part of the output contract:
// exporters serialize the grid verbatim and interpret cells by these codes.
const (
	CellWall       CellType = 0
	CellFloor      CellType = 1
	CellDoor       CellType = 2
	CellRoomCenter CellType = 3
)

// String returns a human-readable name for the cell type
func (c CellType) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellFloor:
		return "floor"
	case CellDoor:
		return "door"
	case CellRoomCenter:
		return "room_center"
	}
	return "unknown"
}

// Grid is a height x width cell map indexed grid[y][x], initialized all-wall
type Grid [][]CellType

// NewGrid creates an all-wall grid of the given dimensions
func NewGrid(width, height int) Grid {
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]CellType, width)
	}
	return grid
}

// Point is a 2-D grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomType is one of the ten flavor tags a room can carry
type RoomType string

// Room type vocabulary
const (
	RoomChamber    RoomType = "Chamber"
	RoomHall       RoomType = "Hall"
	RoomTreasury   RoomType = "Treasury"
	RoomBarracks   RoomType = "Barracks"
	RoomLibrary    RoomType = "Library"
	RoomArmory     RoomType = "Armory"
	RoomKitchen    RoomType = "Kitchen"
	RoomThroneRoom RoomType = "Throne Room"
	RoomChapel     RoomType = "Chapel"
	RoomLaboratory RoomType = "Laboratory"
)

// RoomTypes lists the full room type vocabulary in draw order
var RoomTypes = []RoomType{
	RoomChamber, RoomHall, RoomTreasury, RoomBarracks, RoomLibrary,
	RoomArmory, RoomKitchen, RoomThroneRoom, RoomChapel, RoomLaboratory,
}

// Room is a placed rectangular room. ID equals insertion index. Center
// fields are populated when the room is stamped onto the grid.
type Room struct {
	ID      int      `json:"id"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Type    RoomType `json:"type"`
	CenterX int      `json:"center_x"`
	CenterY int      `json:"center_y"`
}

// Contains reports whether the point lies inside the room's rectangle
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Corridor orientation tags
const (
	OrientationHorizontalFirst = "horizontal-first"
	OrientationVerticalFirst   = "vertical-first"
)

// Corridor is a carved L-shaped connection between two room centers. Path
// holds only the cells the carve actually converted from wall to floor.
type Corridor struct {
	Start       Point   `json:"start"`
	End         Point   `json:"end"`
	Path        []Point `json:"path"`
	Width       int     `json:"width"`
	Orientation string  `json:"orientation"`
}

// Dungeon is the canonical structure produced by the dungeon generator and
// consumed by the NPC and loot generators and all downstream renderers.
type Dungeon struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Grid       Grid        `json:"grid"`
	Rooms      []Room      `json:"rooms"`
	Corridors  []Corridor  `json:"corridors"`
	Encounters []Encounter `json:"encounters"`
	Biome      Biome       `json:"biome"`
	Difficulty Difficulty  `json:"difficulty"`
}

// Metadata is the envelope attached to a composed generation run
type Metadata struct {
	GeneratedAt string           `json:"generated_at"`
	Seed        string           `json:"seed"`
	Params      GenerationParams `json:"params"`
}

// CompleteDungeon is the composed output of a full generation run: the
// dungeon structure plus NPCs, loot, and the metadata envelope. It is fully
// self-describing; exporters serialize it verbatim.
type CompleteDungeon struct {
	Dungeon  *Dungeon    `json:"dungeon"`
	NPCs     []NPC       `json:"npcs"`
	Loot     []LootTable `json:"loot"`
	Metadata Metadata    `json:"metadata"`
}
