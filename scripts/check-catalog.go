package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/foolchen/lifeRestart/internal/entities"
)

// Scans the catalog hash for fields the talent loader would reject and
// optionally removes them.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	key := os.Getenv("TALENT_CATALOG_KEY")
	if key == "" {
		key = "talent_catalog"
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
	fmt.Printf("Scanning %s for corrupted talents...\n", key)

	iter := client.HScan(ctx, key, 0, "*", 0).Iterator()

	var corrupted []string
	var checked int

	for iter.Next(ctx) {
		field := iter.Val()
		if !iter.Next(ctx) {
			break
		}
		value := iter.Val()
		checked++

		if _, err := entities.ParseTalentID(field); err != nil {
			fmt.Printf("✗ Non-numeric talent id %q\n", field)
			corrupted = append(corrupted, field)
			continue
		}

		var raw entities.RawTalent
		if err := json.Unmarshal([]byte(value), &raw); err != nil {
			fmt.Printf("✗ Corrupted JSON in talent %s: %v\n", field, err)
			corrupted = append(corrupted, field)
			continue
		}

		if _, fallbacks := raw.Definition(0); len(fallbacks) > 0 {
			for _, fb := range fallbacks {
				fmt.Printf("! Talent %s %s entry %q: %s\n", field, fb.Section, fb.Entry, fb.Reason)
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d talents, found %d corrupted entries\n", checked, len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted talents found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these corrupted talents? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	if err := client.HDel(ctx, key, corrupted...).Err(); err != nil {
		log.Fatal("Failed to delete corrupted talents:", err)
	}
	fmt.Printf("Deleted %d talents\n", len(corrupted))
}
