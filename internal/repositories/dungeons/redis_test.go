package dungeons_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	"github.com/dungeonforge/dungeon-api/internal/repositories/dungeons"
	"github.com/dungeonforge/dungeon-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    dungeons.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)}

	repo, err := dungeons.NewRedisRepository(&dungeons.Config{
		Client:      client,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("dungeon"),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) result() *entities.CompleteDungeon {
	return &entities.CompleteDungeon{
		Dungeon: &entities.Dungeon{
			Width:      20,
			Height:     20,
			Grid:       entities.NewGrid(20, 20),
			Rooms:      []entities.Room{{ID: 0, X: 2, Y: 2, Width: 4, Height: 4, Type: entities.RoomChamber}},
			Corridors:  []entities.Corridor{},
			Encounters: []entities.Encounter{},
			Biome:      entities.BiomeDungeon,
			Difficulty: entities.DifficultyMedium,
		},
		NPCs: []entities.NPC{},
		Loot: []entities.LootTable{},
		Metadata: entities.Metadata{
			GeneratedAt: "2025-03-15T10:00:00Z",
			Seed:        "test1",
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, dungeons.SaveInput{Result: s.result()})
	s.Require().NoError(err)
	s.Equal("dungeon_1", saved.Dungeon.ID)
	s.Equal(s.clock.T, saved.Dungeon.CreatedAt)
	s.True(saved.Dungeon.ExpiresAt.IsZero())

	got, err := s.repo.Get(s.ctx, dungeons.GetInput{ID: saved.Dungeon.ID})
	s.Require().NoError(err)
	s.Equal(saved.Dungeon.ID, got.Dungeon.ID)
	s.Equal("test1", got.Dungeon.Result.Metadata.Seed)
	s.Equal(20, got.Dungeon.Result.Dungeon.Width)
	s.Len(got.Dungeon.Result.Dungeon.Rooms, 1)
}

func (s *RedisRepositoryTestSuite) TestSaveRequiresResult() {
	_, err := s.repo.Save(s.ctx, dungeons.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, dungeons.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetRequiresID() {
	_, err := s.repo.Get(s.ctx, dungeons.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestTTLRecordsExpiry() {
	saved, err := s.repo.Save(s.ctx, dungeons.SaveInput{Result: s.result(), TTL: time.Hour})
	s.Require().NoError(err)
	s.Equal(s.clock.T.Add(time.Hour), saved.Dungeon.ExpiresAt)

	got, err := s.repo.Get(s.ctx, dungeons.GetInput{ID: saved.Dungeon.ID})
	s.Require().NoError(err)
	s.Equal(saved.Dungeon.ExpiresAt, got.Dungeon.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestExpiredRecordReadsAsMissing() {
	saved, err := s.repo.Save(s.ctx, dungeons.SaveInput{Result: s.result(), TTL: time.Hour})
	s.Require().NoError(err)

	// The Redis key is still alive but the stored expiry has passed
	s.clock.T = s.clock.T.Add(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, dungeons.GetInput{ID: saved.Dungeon.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	saved, err := s.repo.Save(s.ctx, dungeons.SaveInput{Result: s.result()})
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(s.ctx, dungeons.DeleteInput{ID: saved.Dungeon.ID})
	s.Require().NoError(err)
	s.True(deleted.Deleted)

	_, err = s.repo.Get(s.ctx, dungeons.GetInput{ID: saved.Dungeon.ID})
	s.True(errors.IsNotFound(err))

	deleted, err = s.repo.Delete(s.ctx, dungeons.DeleteInput{ID: saved.Dungeon.ID})
	s.Require().NoError(err)
	s.False(deleted.Deleted)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
