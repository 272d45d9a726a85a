package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

const (
	characterKeyPrefix = "character:"
	indexKey           = "characters:index"
)

type repair struct {
	key   string
	fixed []byte
	notes []string
}

func main() {
	redisURL := os.Getenv("RPG_SHEET_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
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
	fmt.Println("Scanning stored characters...")

	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var repairs []repair
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var character sheet.Character
		if err := json.Unmarshal([]byte(data), &character); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		normalized, issues := sheet.Normalize(&character)
		if !issues.HasErrors() {
			continue
		}

		fixed, err := json.Marshal(normalized)
		if err != nil {
			fmt.Printf("Error encoding %s: %v\n", key, err)
			continue
		}

		r := repair{key: key, fixed: fixed}
		for field, problems := range issues.Fields {
			for _, p := range problems {
				r.notes = append(r.notes, field+": "+p)
			}
		}
		fmt.Printf("✗ %s needs %d fixes\n", key, len(r.notes))
		repairs = append(repairs, r)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d characters, %d corrupted, %d repairable\n", checkedCount, len(corruptedKeys), len(repairs))

	if len(corruptedKeys) == 0 && len(repairs) == 0 {
		fmt.Println("All characters are clean!")
		return
	}

	for _, r := range repairs {
		fmt.Printf("\n%s:\n", r.key)
		for _, note := range r.notes {
			fmt.Printf("  - %s\n", note)
		}
	}
	if len(corruptedKeys) > 0 {
		fmt.Println("\nCorrupted keys:")
		for _, key := range corruptedKeys {
			fmt.Printf("  - %s\n", key)
		}
	}

	fmt.Print("\nRewrite repairable characters and DELETE corrupted ones? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, r := range repairs {
		if err := client.Set(ctx, r.key, r.fixed, 0).Err(); err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", r.key, err)
		} else {
			fmt.Printf("Rewrote %s\n", r.key)
		}
	}
	for _, key := range corruptedKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, indexKey, key[len(characterKeyPrefix):])
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
