package npc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *Generator
	dungeon   *entities.Dungeon
	params    entities.GenerationParams
}

func (s *GeneratorTestSuite) SetupTest() {
	s.generator = New()
	s.dungeon = dungeonWithRooms(10, entities.BiomeDungeon, entities.DifficultyMedium)
	s.params = entities.GenerationParams{
		Seed:       "test1",
		Difficulty: entities.DifficultyMedium,
		Biome:      entities.BiomeDungeon,
		EnableAI:   true,
	}
}

func dungeonWithRooms(count int, biome entities.Biome, difficulty entities.Difficulty) *entities.Dungeon {
	rooms := make([]entities.Room, count)
	for i := range rooms {
		rooms[i] = entities.Room{ID: i, X: 1, Y: 1, Width: 4, Height: 4, Type: entities.RoomChamber}
	}
	return &entities.Dungeon{
		Width:      30,
		Height:     30,
		Rooms:      rooms,
		Biome:      biome,
		Difficulty: difficulty,
	}
}

func (s *GeneratorTestSuite) TestDisabledReturnsEmptyRoster() {
	params := s.params
	params.EnableAI = false

	npcs := s.generator.Generate(s.dungeon, params)

	s.NotNil(npcs)
	s.Empty(npcs)
}

func (s *GeneratorTestSuite) TestCountScalesWithRooms() {
	npcs := s.generator.Generate(s.dungeon, s.params)
	s.Len(npcs, 4, "10 rooms at 0.4 per room yields 4 NPCs")

	small := dungeonWithRooms(2, entities.BiomeDungeon, entities.DifficultyMedium)
	s.Empty(s.generator.Generate(small, s.params), "2 rooms floors to zero NPCs")
}

func (s *GeneratorTestSuite) TestDeterminism() {
	first := s.generator.Generate(s.dungeon, s.params)
	second := s.generator.Generate(s.dungeon, s.params)

	s.Equal(first, second)
}

func (s *GeneratorTestSuite) TestSeedSensitivity() {
	first := s.generator.Generate(s.dungeon, s.params)

	other := s.params
	other.Seed = "test2"
	second := s.generator.Generate(s.dungeon, other)

	s.NotEqual(first, second)
}

func (s *GeneratorTestSuite) TestStatFormulas() {
	npcs := s.generator.Generate(s.dungeon, s.params)
	s.NotEmpty(npcs)

	for i, npc := range npcs {
		s.Equal(i, npc.ID)
		s.GreaterOrEqual(npc.Level, 1)
		s.LessOrEqual(npc.Level, 8, "medium modifier is 1.0 so levels stay in the raw 1-8 roll range")
		s.Equal(10+npc.Level/2, npc.AC, "medium difficulty leaves the base AC unscaled")
		s.GreaterOrEqual(npc.HP, 8+npc.Level*4)
		s.LessOrEqual(npc.HP, 8+npc.Level*8)

		expectedCR := math.Round(math.Max(0.125, float64(npc.Level)/4)*4) / 4
		s.Equal(expectedCR, npc.CR)
	}
}

func (s *GeneratorTestSuite) TestDifficultyScalesStats() {
	easy := dungeonWithRooms(10, entities.BiomeDungeon, entities.DifficultyEasy)
	deadly := dungeonWithRooms(10, entities.BiomeDungeon, entities.DifficultyDeadly)

	easyNPCs := s.generator.Generate(easy, s.params)
	deadlyNPCs := s.generator.Generate(deadly, s.params)

	// Same seed, so the underlying rolls match; only the modifier differs.
	s.Len(deadlyNPCs, len(easyNPCs))
	for i := range easyNPCs {
		s.GreaterOrEqual(deadlyNPCs[i].Level, easyNPCs[i].Level)
		s.GreaterOrEqual(deadlyNPCs[i].AC, easyNPCs[i].AC)
		s.GreaterOrEqual(deadlyNPCs[i].HP, easyNPCs[i].HP)
		s.GreaterOrEqual(deadlyNPCs[i].CR, easyNPCs[i].CR)
	}
}

func (s *GeneratorTestSuite) TestVocabularyIsBiomeScoped() {
	crypt := dungeonWithRooms(10, entities.BiomeCrypt, entities.DifficultyMedium)
	npcs := s.generator.Generate(crypt, s.params)
	s.NotEmpty(npcs)

	races := make(map[string]bool)
	for _, r := range racesFor(entities.BiomeCrypt) {
		races[r] = true
	}
	classes := make(map[string]bool)
	for _, c := range classesFor(entities.BiomeCrypt) {
		classes[c] = true
	}

	for _, npc := range npcs {
		s.True(races[npc.Race], "race %q is not in the crypt vocabulary", npc.Race)
		s.True(classes[npc.Class], "class %q is not in the crypt vocabulary", npc.Class)
		s.NotEmpty(npc.Name)
		s.NotEmpty(npc.Description)
		s.NotEmpty(npc.Avatar)
		s.NotEmpty(npc.Personality)
		s.NotEmpty(npc.Motivation)
		s.NotEmpty(npc.Secrets)
	}
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func TestAvatarFallback(t *testing.T) {
	// Unlisted race/class pairs fall back through class default to the
	// generic avatar.
	assert.NotEmpty(t, avatarFor("Human", "Fighter"))
	assert.Equal(t, defaultAvatar, avatarFor("Modron", "Accountant"))
}

func TestNameTableFallback(t *testing.T) {
	table := nameTableFor("Dragonborn")
	assert.Equal(t, nameTableFor("Human"), table, "unlisted races use the human name tables")
}
