package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/storage"
)

func TestSettingsRepositoryDefaultsWhenAbsent(t *testing.T) {
	repo := repository.NewSettingsRepository(storage.NewMemoryStore(), zap.NewNop())
	assert.Equal(t, model.DefaultSettings(), repo.Get())
}

func TestSettingsRepositoryDefaultsWhenCorrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("settings", "###"))

	repo := repository.NewSettingsRepository(store, zap.NewNop())
	assert.Equal(t, model.DefaultSettings(), repo.Get())
}

func TestSettingsRepositorySaveOverwrites(t *testing.T) {
	repo := repository.NewSettingsRepository(storage.NewMemoryStore(), zap.NewNop())

	repo.Save(model.Settings{Theme: model.ThemeDark, AccentColor: "blue"})
	assert.Equal(t, model.Settings{Theme: model.ThemeDark, AccentColor: "blue"}, repo.Get())

	repo.Save(model.Settings{Theme: model.ThemeLight, AccentColor: "pink"})
	assert.Equal(t, model.Settings{Theme: model.ThemeLight, AccentColor: "pink"}, repo.Get())
}
