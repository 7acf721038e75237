package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	"github.com/dungeonforge/dungeon-api/internal/redis"
	"github.com/dungeonforge/dungeon-api/internal/repositories/dungeons"
)

var getRedisAddr string

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch a stored dungeon by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getRedisAddr, "redis", "localhost:6379", "Redis address")
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := redis.NewClient(getRedisAddr, nil)
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

	output, err := repo.Get(context.Background(), dungeons.GetInput{ID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get dungeon: %w", err)
	}

	payload, err := json.MarshalIndent(output.Dungeon, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dungeon: %w", err)
	}
	payload = append(payload, '\n')

	_, err = os.Stdout.Write(payload)
	return err
}
