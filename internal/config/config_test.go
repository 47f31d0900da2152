package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseOperatorIDs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []int64
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: nil,
		},
		{
			name:     "single id",
			raw:      "123",
			expected: []int64{123},
		},
		{
			name:     "multiple ids with spaces",
			raw:      " 123 , 456,789 ",
			expected: []int64{123, 456, 789},
		},
		{
			name:     "non-numeric entries skipped",
			raw:      "123,abc,456,,12.5",
			expected: []int64{123, 456},
		},
		{
			name:     "negative id accepted",
			raw:      "-100123",
			expected: []int64{-100123},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseOperatorIDs(tt.raw)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	originalBotToken := os.Getenv("BOT_TOKEN")
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
	}()

	os.Unsetenv("BOT_TOKEN")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	originalBotToken := os.Getenv("BOT_TOKEN")
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
	}()

	os.Setenv("BOT_TOKEN", "test_token")
	os.Unsetenv("ORGANIZER_IDS")
	os.Unsetenv("LOCAL_TZ")
	os.Unsetenv("REG_DB_PATH")
	os.Unsetenv("VIDEOS_DIR")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Empty(t, cfg.OperatorIDs)
	assert.Equal(t, "Asia/Tashkent", cfg.Timezone)
	assert.Equal(t, "data/contest.json", cfg.RegistryPath)
	assert.Equal(t, "videos", cfg.VideosDir)
}

func TestLoad_WithOperators(t *testing.T) {
	originalBotToken := os.Getenv("BOT_TOKEN")
	originalOperators := os.Getenv("ORGANIZER_IDS")
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
		if originalOperators != "" {
			os.Setenv("ORGANIZER_IDS", originalOperators)
		} else {
			os.Unsetenv("ORGANIZER_IDS")
		}
	}()

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("ORGANIZER_IDS", "111,222")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []int64{111, 222}, cfg.OperatorIDs)
}
