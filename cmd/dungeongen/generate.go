package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/generators/dungeon"
	"github.com/dungeonforge/dungeon-api/internal/generators/loot"
	"github.com/dungeonforge/dungeon-api/internal/generators/npc"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/generation"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	"github.com/dungeonforge/dungeon-api/internal/redis"
	"github.com/dungeonforge/dungeon-api/internal/repositories/dungeons"
)

var (
	seed          string
	width         int
	height        int
	roomCount     int
	corridorWidth int
	difficulty    string
	biome         string
	enableAI      bool
	format        string
	outputPath    string
	showMap       bool
	store         bool
	redisAddr     string
	storeTTL      time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon from a seed",
	Long: `Generate a complete dungeon (layout, encounters, NPCs, loot) from a
seed and parameter set, and write it as JSON or YAML. Examples:

  dungeongen generate --seed test1
  dungeongen generate --seed lair --width 40 --height 40 --rooms 12 --difficulty deadly --biome crypt --ai
  dungeongen generate --seed lair --map --format yaml --output lair.yaml
  dungeongen generate --seed lair --store --redis localhost:6379`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&seed, "seed", "", "generation seed (required)")
	generateCmd.Flags().IntVar(&width, "width", 30, "grid width (10-50)")
	generateCmd.Flags().IntVar(&height, "height", 30, "grid height (10-50)")
	generateCmd.Flags().IntVar(&roomCount, "rooms", 8, "target room count (3-20)")
	generateCmd.Flags().IntVar(&corridorWidth, "corridor-width", 1, "corridor width (1-3)")
	generateCmd.Flags().StringVar(&difficulty, "difficulty", "medium", "difficulty: easy, medium, hard, deadly")
	generateCmd.Flags().StringVar(&biome, "biome", "dungeon", "biome: dungeon, cave, forest, crypt, temple, tower")
	generateCmd.Flags().BoolVar(&enableAI, "ai", false, "enable AI enhancement (NPC generation)")
	generateCmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "write output to file instead of stdout")
	generateCmd.Flags().BoolVar(&showMap, "map", false, "print an ASCII map preview to stderr")
	generateCmd.Flags().BoolVar(&store, "store", false, "store the result in Redis and print its ID")
	generateCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address for --store")
	generateCmd.Flags().DurationVar(&storeTTL, "ttl", 0, "expiry for stored dungeons (0 = keep forever)")

	_ = generateCmd.MarkFlagRequired("seed")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc, err := generation.NewOrchestrator(&generation.Config{
		DungeonGenerator: dungeon.New(),
		NPCGenerator:     npc.New(),
		LootGenerator:    loot.New(),
		Clock:            clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	params := entities.GenerationParams{
		Seed:          seed,
		Width:         width,
		Height:        height,
		RoomCount:     roomCount,
		CorridorWidth: corridorWidth,
		Difficulty:    entities.Difficulty(difficulty),
		Biome:         entities.Biome(biome),
		EnableAI:      enableAI,
	}

	ctx := context.Background()
	output, err := svc.GenerateComplete(ctx, &generation.GenerateCompleteInput{Params: params})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if showMap {
		fmt.Fprintln(os.Stderr, renderMap(output.Result.Dungeon))
	}

	if err := writeResult(output.Result); err != nil {
		return err
	}

	if store {
		return storeResult(ctx, output.Result)
	}
	return nil
}

func writeResult(result *entities.CompleteDungeon) error {
	var payload []byte
	var err error

	switch format {
	case "json":
		payload, err = json.MarshalIndent(result, "", "  ")
		if err == nil {
			payload = append(payload, '\n')
		}
	case "yaml":
		payload, err = yaml.Marshal(result)
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outputPath)
	return nil
}

func storeResult(ctx context.Context, result *entities.CompleteDungeon) error {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := dungeons.NewRedisRepository(&dungeons.Config{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("dungeon"),
	})
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	saved, err := repo.Save(ctx, dungeons.SaveInput{Result: result, TTL: storeTTL})
	if err != nil {
		return fmt.Errorf("failed to store dungeon: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored as %s\n", saved.Dungeon.ID)
	return nil
}
