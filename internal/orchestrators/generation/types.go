package generation

import (
	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// GenerateDungeonInput defines the request for generating a dungeon structure
type GenerateDungeonInput struct {
	Params entities.GenerationParams
}

// GenerateDungeonOutput defines the response for generating a dungeon structure
type GenerateDungeonOutput struct {
	Dungeon *entities.Dungeon
}

// GenerateNPCsInput defines the request for generating a dungeon's NPC roster
type GenerateNPCsInput struct {
	Dungeon *entities.Dungeon
	Params  entities.GenerationParams
}

// GenerateNPCsOutput defines the response for generating a dungeon's NPC roster
type GenerateNPCsOutput struct {
	NPCs []entities.NPC
}

// GenerateLootInput defines the request for generating a dungeon's loot tables
type GenerateLootInput struct {
	Dungeon *entities.Dungeon
	Params  entities.GenerationParams
}

// GenerateLootOutput defines the response for generating a dungeon's loot tables
type GenerateLootOutput struct {
	Loot []entities.LootTable
}

// GenerateCompleteInput defines the request for a full composed generation run
type GenerateCompleteInput struct {
	Params entities.GenerationParams
}

// GenerateCompleteOutput defines the response for a full composed generation run
type GenerateCompleteOutput struct {
	Result *entities.CompleteDungeon
}
