package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Just enough structure to read the storage bookkeeping
type storedRecord struct {
	ID        string          `json:"id"`
	Result    json.RawMessage `json:"result"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for stale dungeon records...")

	iter := client.Scan(ctx, 0, "dungeon:*", 0).Iterator()

	var staleKeys []string
	var checkedCount int
	now := time.Now()

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record storedRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		if record.Result == nil {
			fmt.Printf("✗ Missing result payload in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		// Keys written with a TTL normally expire on their own; a passed
		// expires_at on a live key means the TTL was lost somewhere.
		if !record.ExpiresAt.IsZero() && now.After(record.ExpiresAt) {
			fmt.Printf("✗ Expired record in %s: expired %s\n", key, record.ExpiresAt.Format(time.RFC3339))
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d stale entries\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		fmt.Println("No stale records found!")
		return
	}

	fmt.Println("\nStale keys:")
	for _, key := range staleKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these stale entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range staleKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
