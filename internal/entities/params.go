package entities

// Difficulty selects the four-tier difficulty scale used by the encounter,
// NPC, and loot generators.
type Difficulty string

// Difficulty constants
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyDeadly Difficulty = "deadly"
)

// Difficulties lists all valid difficulties
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly}

// Valid reports whether the difficulty is one of the four known tiers
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly:
		return true
	}
	return false
}

// Modifier returns the encounter/loot multiplier for the difficulty.
// Unknown difficulties fall back to the medium multiplier.
func (d Difficulty) Modifier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.5
	case DifficultyMedium:
		return 1.0
	case DifficultyHard:
		return 1.5
	case DifficultyDeadly:
		return 2.0
	}
	return 1.0
}

// NPCModifier returns the stat multiplier applied to generated NPCs.
// Unknown difficulties fall back to the medium multiplier.
func (d Difficulty) NPCModifier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.7
	case DifficultyMedium:
		return 1.0
	case DifficultyHard:
		return 1.3
	case DifficultyDeadly:
		return 1.6
	}
	return 1.0
}

// Biome selects the thematic vocabulary set (creatures, races, classes,
// flavor text) used by the content generators.
type Biome string

// Biome constants
const (
	BiomeDungeon Biome = "dungeon"
	BiomeCave    Biome = "cave"
	BiomeForest  Biome = "forest"
	BiomeCrypt   Biome = "crypt"
	BiomeTemple  Biome = "temple"
	BiomeTower   Biome = "tower"
)

// Biomes lists all valid biomes
var Biomes = []Biome{BiomeDungeon, BiomeCave, BiomeForest, BiomeCrypt, BiomeTemple, BiomeTower}

// Valid reports whether the biome is one of the six known sets
func (b Biome) Valid() bool {
	switch b {
	case BiomeDungeon, BiomeCave, BiomeForest, BiomeCrypt, BiomeTemple, BiomeTower:
		return true
	}
	return false
}

// Parameter bounds for dungeon generation
const (
	MinDimension     = 10
	MaxDimension     = 50
	MinRoomCount     = 3
	MaxRoomCount     = 20
	MinCorridorWidth = 1
	MaxCorridorWidth = 3
)

// GenerationParams is the full input contract for a generation run. The
// orchestrator validates ranges before any generator runs; the generators
// themselves assume valid input.
type GenerationParams struct {
	Seed          string     `json:"seed"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	RoomCount     int        `json:"room_count"`
	CorridorWidth int        `json:"corridor_width"`
	Difficulty    Difficulty `json:"difficulty"`
	Biome         Biome      `json:"biome"`
	EnableAI      bool       `json:"enable_ai"`
}
