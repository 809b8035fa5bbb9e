package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

var knownStates = map[greedisland.GameState]bool{
	greedisland.GameStateIdle:            true,
	greedisland.GameStateDecision:        true,
	greedisland.GameStateResolving:       true,
	greedisland.GameStateGameOver:        true,
	greedisland.GameStateVictory:         true,
	greedisland.GameStateChoosingRewards: true,
}

// problem describes why a stored session cannot be played, or "" if it can
func problem(raw string) string {
	var data session.SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return "corrupted JSON"
	}
	switch {
	case data.ID == "":
		return "missing id"
	case data.Player == nil:
		return "missing player"
	case !knownStates[data.State]:
		return fmt.Sprintf("unknown state %q", data.State)
	case data.State == greedisland.GameStateDecision && data.Scenario == nil:
		return "decision without a scenario"
	case len(data.Player.FreeSlots) > greedisland.MaxFreeSlots:
		return "free slots over capacity"
	}
	return ""
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
	fmt.Println("Scanning for unplayable sessions...")

	iter := client.Scan(ctx, 0, "session:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := problem(raw); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d unplayable sessions\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("All sessions look fine!")
		return
	}

	fmt.Print("\nDo you want to DELETE these sessions? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if strings.EqualFold(response, "yes") {
		for _, key := range badKeys {
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
