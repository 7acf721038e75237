// Package generation implements the generation orchestrator that composes
// the dungeon, NPC, and loot generators into the full pipeline output.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/dungeonforge/dungeon-api/internal/orchestrators/generation Service,DungeonGenerator,NPCGenerator,LootGenerator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
)

// Service defines the interface for generation operations
type Service interface {
	// GenerateDungeon runs the structure pipeline: rooms, corridors,
	// doors, encounters
	GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error)

	// GenerateNPCs produces the NPC roster for an already generated
	// dungeon; empty unless AI enhancement is enabled
	GenerateNPCs(ctx context.Context, input *GenerateNPCsInput) (*GenerateNPCsOutput, error)

	// GenerateLoot produces the loot tables for an already generated dungeon
	GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error)

	// GenerateComplete runs the whole pipeline and wraps the result in the
	// metadata envelope
	GenerateComplete(ctx context.Context, input *GenerateCompleteInput) (*GenerateCompleteOutput, error)
}

// DungeonGenerator produces the dungeon structure from parameters
type DungeonGenerator interface {
	Generate(params entities.GenerationParams) *entities.Dungeon
}

// NPCGenerator produces an NPC roster from a generated dungeon
type NPCGenerator interface {
	Generate(dungeon *entities.Dungeon, params entities.GenerationParams) []entities.NPC
}

// LootGenerator produces loot tables from a generated dungeon
type LootGenerator interface {
	Generate(dungeon *entities.Dungeon, params entities.GenerationParams) []entities.LootTable
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	DungeonGenerator DungeonGenerator
	NPCGenerator     NPCGenerator
	LootGenerator    LootGenerator
	Clock            clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DungeonGenerator == nil {
		vb.RequiredField("DungeonGenerator")
	}
	if c.NPCGenerator == nil {
		vb.RequiredField("NPCGenerator")
	}
	if c.LootGenerator == nil {
		vb.RequiredField("LootGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	dungeonGen DungeonGenerator
	npcGen     NPCGenerator
	lootGen    LootGenerator
	clock      clock.Clock
}

// NewOrchestrator creates a new generation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dungeonGen: cfg.DungeonGenerator,
		npcGen:     cfg.NPCGenerator,
		lootGen:    cfg.LootGenerator,
		clock:      cfg.Clock,
	}, nil
}

// validateParams checks the input contract before any generator runs. The
// generators themselves assume valid input, so every range is enforced here.
func validateParams(params entities.GenerationParams) error {
	vb := errors.NewValidationBuilder()

	if params.Seed == "" {
		vb.RequiredField("Seed")
	}
	vb.RangeField("Width", params.Width, entities.MinDimension, entities.MaxDimension)
	vb.RangeField("Height", params.Height, entities.MinDimension, entities.MaxDimension)
	vb.RangeField("RoomCount", params.RoomCount, entities.MinRoomCount, entities.MaxRoomCount)
	vb.RangeField("CorridorWidth", params.CorridorWidth, entities.MinCorridorWidth, entities.MaxCorridorWidth)
	if !params.Difficulty.Valid() {
		vb.InvalidField("Difficulty", string(params.Difficulty))
	}
	if !params.Biome.Valid() {
		vb.InvalidField("Biome", string(params.Biome))
	}

	return vb.Build()
}

// GenerateDungeon runs the structure pipeline
func (o *orchestrator) GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParams(input.Params); err != nil {
		return nil, err
	}

	dungeon := o.dungeonGen.Generate(input.Params)

	if len(dungeon.Rooms) < input.Params.RoomCount {
		// Degraded success: the attempt budget ran out before all rooms
		// fit. Downstream consumers handle any room count, including zero.
		slog.Warn("Placed fewer rooms than requested",
			"seed", input.Params.Seed,
			"requested", input.Params.RoomCount,
			"placed", len(dungeon.Rooms),
		)
	}

	slog.Info("Dungeon structure generated",
		"seed", input.Params.Seed,
		"rooms", len(dungeon.Rooms),
		"corridors", len(dungeon.Corridors),
		"encounters", len(dungeon.Encounters),
	)

	return &GenerateDungeonOutput{Dungeon: dungeon}, nil
}

// GenerateNPCs produces the NPC roster for a generated dungeon
func (o *orchestrator) GenerateNPCs(ctx context.Context, input *GenerateNPCsInput) (*GenerateNPCsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Dungeon == nil {
		return nil, errors.InvalidArgument("dungeon is required")
	}

	npcs := o.npcGen.Generate(input.Dungeon, input.Params)

	return &GenerateNPCsOutput{NPCs: npcs}, nil
}

// GenerateLoot produces the loot tables for a generated dungeon
func (o *orchestrator) GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Dungeon == nil {
		return nil, errors.InvalidArgument("dungeon is required")
	}

	loot := o.lootGen.Generate(input.Dungeon, input.Params)

	return &GenerateLootOutput{Loot: loot}, nil
}

// GenerateComplete runs the whole pipeline and composes the output envelope
func (o *orchestrator) GenerateComplete(ctx context.Context, input *GenerateCompleteInput) (*GenerateCompleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParams(input.Params); err != nil {
		return nil, err
	}

	dungeon := o.dungeonGen.Generate(input.Params)
	npcs := o.npcGen.Generate(dungeon, input.Params)
	loot := o.lootGen.Generate(dungeon, input.Params)

	result := &entities.CompleteDungeon{
		Dungeon: dungeon,
		NPCs:    npcs,
		Loot:    loot,
		Metadata: entities.Metadata{
			GeneratedAt: o.clock.Now().UTC().Format(time.RFC3339),
			Seed:        input.Params.Seed,
			Params:      input.Params,
		},
	}

	slog.Info("Complete dungeon generated",
		"seed", input.Params.Seed,
		"rooms", len(dungeon.Rooms),
		"npcs", len(npcs),
		"loot_tables", len(loot),
	)

	return &GenerateCompleteOutput{Result: result}, nil
}
