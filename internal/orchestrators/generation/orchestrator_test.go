package generation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	dungeongen "github.com/dungeonforge/dungeon-api/internal/generators/dungeon"
	lootgen "github.com/dungeonforge/dungeon-api/internal/generators/loot"
	npcgen "github.com/dungeonforge/dungeon-api/internal/generators/npc"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/generation"
	generationmock "github.com/dungeonforge/dungeon-api/internal/orchestrators/generation/mock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockDungeon *generationmock.MockDungeonGenerator
	mockNPC     *generationmock.MockNPCGenerator
	mockLoot    *generationmock.MockLootGenerator
	clock       *clock.Fixed
	service     generation.Service
	ctx         context.Context
	params      entities.GenerationParams
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDungeon = generationmock.NewMockDungeonGenerator(s.ctrl)
	s.mockNPC = generationmock.NewMockNPCGenerator(s.ctrl)
	s.mockLoot = generationmock.NewMockLootGenerator(s.ctrl)
	s.clock = &clock.Fixed{T: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)}

	service, err := generation.NewOrchestrator(&generation.Config{
		DungeonGenerator: s.mockDungeon,
		NPCGenerator:     s.mockNPC,
		LootGenerator:    s.mockLoot,
		Clock:            s.clock,
	})
	s.Require().NoError(err)
	s.service = service

	s.ctx = context.Background()
	s.params = entities.GenerationParams{
		Seed:          "test1",
		Width:         20,
		Height:        20,
		RoomCount:     5,
		CorridorWidth: 1,
		Difficulty:    entities.DifficultyMedium,
		Biome:         entities.BiomeDungeon,
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) stubDungeon() *entities.Dungeon {
	return &entities.Dungeon{
		Width:      20,
		Height:     20,
		Grid:       entities.NewGrid(20, 20),
		Rooms:      []entities.Room{{ID: 0, X: 2, Y: 2, Width: 4, Height: 4, Type: entities.RoomChamber}},
		Corridors:  []entities.Corridor{},
		Encounters: []entities.Encounter{},
		Biome:      entities.BiomeDungeon,
		Difficulty: entities.DifficultyMedium,
	}
}

func (s *OrchestratorTestSuite) TestGenerateDungeon() {
	dungeon := s.stubDungeon()
	s.mockDungeon.EXPECT().Generate(s.params).Return(dungeon)

	output, err := s.service.GenerateDungeon(s.ctx, &generation.GenerateDungeonInput{Params: s.params})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(dungeon, output.Dungeon)
}

func (s *OrchestratorTestSuite) TestGenerateDungeonNilInput() {
	_, err := s.service.GenerateDungeon(s.ctx, nil)

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateDungeonValidation() {
	cases := []struct {
		name   string
		mutate func(*entities.GenerationParams)
	}{
		{"missing seed", func(p *entities.GenerationParams) { p.Seed = "" }},
		{"width too small", func(p *entities.GenerationParams) { p.Width = 5 }},
		{"width too large", func(p *entities.GenerationParams) { p.Width = 51 }},
		{"height too small", func(p *entities.GenerationParams) { p.Height = 9 }},
		{"room count too small", func(p *entities.GenerationParams) { p.RoomCount = 2 }},
		{"room count too large", func(p *entities.GenerationParams) { p.RoomCount = 21 }},
		{"corridor width too small", func(p *entities.GenerationParams) { p.CorridorWidth = 0 }},
		{"corridor width too large", func(p *entities.GenerationParams) { p.CorridorWidth = 4 }},
		{"bad difficulty", func(p *entities.GenerationParams) { p.Difficulty = "brutal" }},
		{"bad biome", func(p *entities.GenerationParams) { p.Biome = "swamp" }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			params := s.params
			tc.mutate(&params)

			_, err := s.service.GenerateDungeon(s.ctx, &generation.GenerateDungeonInput{Params: params})

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "expected invalid argument, got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateNPCs() {
	dungeon := s.stubDungeon()
	npcs := []entities.NPC{{ID: 0, Name: "Thorin Ironforge"}}
	s.mockNPC.EXPECT().Generate(dungeon, s.params).Return(npcs)

	output, err := s.service.GenerateNPCs(s.ctx, &generation.GenerateNPCsInput{Dungeon: dungeon, Params: s.params})

	s.Require().NoError(err)
	s.Equal(npcs, output.NPCs)
}

func (s *OrchestratorTestSuite) TestGenerateNPCsRequiresDungeon() {
	_, err := s.service.GenerateNPCs(s.ctx, &generation.GenerateNPCsInput{Params: s.params})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateLoot() {
	dungeon := s.stubDungeon()
	loot := []entities.LootTable{{ID: "main_treasure", Name: "Main Treasure"}}
	s.mockLoot.EXPECT().Generate(dungeon, s.params).Return(loot)

	output, err := s.service.GenerateLoot(s.ctx, &generation.GenerateLootInput{Dungeon: dungeon, Params: s.params})

	s.Require().NoError(err)
	s.Equal(loot, output.Loot)
}

func (s *OrchestratorTestSuite) TestGenerateLootRequiresDungeon() {
	_, err := s.service.GenerateLoot(s.ctx, &generation.GenerateLootInput{Params: s.params})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateComplete() {
	dungeon := s.stubDungeon()
	npcs := []entities.NPC{}
	loot := []entities.LootTable{{ID: "main_treasure"}, {ID: "encounter_loot"}}

	s.mockDungeon.EXPECT().Generate(s.params).Return(dungeon)
	s.mockNPC.EXPECT().Generate(dungeon, s.params).Return(npcs)
	s.mockLoot.EXPECT().Generate(dungeon, s.params).Return(loot)

	output, err := s.service.GenerateComplete(s.ctx, &generation.GenerateCompleteInput{Params: s.params})

	s.Require().NoError(err)
	s.Require().NotNil(output.Result)
	s.Equal(dungeon, output.Result.Dungeon)
	s.Equal(npcs, output.Result.NPCs)
	s.Equal(loot, output.Result.Loot)
	s.Equal("2025-03-15T10:30:00Z", output.Result.Metadata.GeneratedAt)
	s.Equal("test1", output.Result.Metadata.Seed)
	s.Equal(s.params, output.Result.Metadata.Params)
}

func (s *OrchestratorTestSuite) TestGenerateCompleteValidatesParams() {
	params := s.params
	params.Seed = ""

	_, err := s.service.GenerateComplete(s.ctx, &generation.GenerateCompleteInput{Params: params})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewOrchestratorValidatesConfig(t *testing.T) {
	_, err := generation.NewOrchestrator(&generation.Config{})
	require.Error(t, err)

	_, err = generation.NewOrchestrator(&generation.Config{Clock: clock.New()})
	require.Error(t, err)
}

func TestGenerateComplete_WithRealGenerators(t *testing.T) {
	// End-to-end determinism across the composed pipeline
	newService := func() generation.Service {
		service, err := generation.NewOrchestrator(&generation.Config{
			DungeonGenerator: dungeongen.New(),
			NPCGenerator:     npcgen.New(),
			LootGenerator:    lootgen.New(),
			Clock:            &clock.Fixed{T: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		})
		require.NoError(t, err)
		return service
	}

	params := entities.GenerationParams{
		Seed:          "integration",
		Width:         30,
		Height:        30,
		RoomCount:     8,
		CorridorWidth: 1,
		Difficulty:    entities.DifficultyHard,
		Biome:         entities.BiomeCrypt,
		EnableAI:      true,
	}
	input := &generation.GenerateCompleteInput{Params: params}

	first, err := newService().GenerateComplete(context.Background(), input)
	require.NoError(t, err)
	second, err := newService().GenerateComplete(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.NotEmpty(t, first.Result.Dungeon.Rooms)
	assert.NotEmpty(t, first.Result.NPCs)
	assert.GreaterOrEqual(t, len(first.Result.Loot), 2)

	// Same run without AI enhancement keeps the roster empty
	params.EnableAI = false
	gated, err := newService().GenerateComplete(context.Background(), &generation.GenerateCompleteInput{Params: params})
	require.NoError(t, err)
	assert.Empty(t, gated.Result.NPCs)
	assert.Equal(t, first.Result.Dungeon, gated.Result.Dungeon, "the structure stream is independent of the AI gate")
}
