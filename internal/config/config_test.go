package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("SUMMARY_TIME", "")
	t.Setenv("DEV_LOGGING", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "taskmanager.db", cfg.DatabasePath)
	assert.Equal(t, "09:00", cfg.SummaryTime)
	assert.Empty(t, cfg.TelegramToken)
	assert.False(t, cfg.DevLogging)
}

func TestLoadFullConfig(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/data/tasks.db")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("SUMMARY_TIME", "07:30")
	t.Setenv("DEV_LOGGING", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/data/tasks.db", cfg.DatabasePath)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.EqualValues(t, 42, cfg.TelegramChatID)
	assert.Equal(t, "07:30", cfg.SummaryTime)
	assert.True(t, cfg.DevLogging)
}

func TestLoadRejectsTokenWithoutChat(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
