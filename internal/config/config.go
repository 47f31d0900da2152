package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	OperatorIDs  []int64
	Timezone     string
	RegistryPath string
	VideosDir    string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		OperatorIDs:  parseOperatorIDs(os.Getenv("ORGANIZER_IDS")),
		Timezone:     getEnv("LOCAL_TZ", "Asia/Tashkent"),
		RegistryPath: getEnv("REG_DB_PATH", "data/contest.json"),
		VideosDir:    getEnv("VIDEOS_DIR", "videos"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return cfg, nil
}

// parseOperatorIDs parses a comma-separated list of numeric identities,
// skipping blank and non-numeric entries
func parseOperatorIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
