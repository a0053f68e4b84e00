package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config keeps runtime settings for the task manager.
type Config struct {
	DatabasePath   string
	TelegramToken  string
	TelegramChatID int64
	SummaryTime    string // HH:MM, local time
	DevLogging     bool
}

// Load reads configuration from environment variables with sane defaults.
// A missing Telegram token disables notifications rather than failing.
func Load() (Config, error) {
	cfg := Config{
		DatabasePath:  strings.TrimSpace(os.Getenv("DATABASE_PATH")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		SummaryTime:   strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		DevLogging:    strings.TrimSpace(os.Getenv("DEV_LOGGING")) == "true",
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "taskmanager.db"
	}
	if cfg.SummaryTime == "" {
		cfg.SummaryTime = "09:00"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be numeric: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}
