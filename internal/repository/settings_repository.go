package repository

import (
	"encoding/json"

	"go.uber.org/zap"

	"task-manager/internal/model"
	"task-manager/internal/storage"
)

// SettingsRepository handles the single settings record.
type SettingsRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewSettingsRepository(store storage.Store, log *zap.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, log: log}
}

// Get returns the persisted settings, or defaults when absent or corrupt.
func (r *SettingsRepository) Get() model.Settings {
	raw, ok, err := r.store.Get(settingsKey)
	if err != nil {
		r.log.Warn("read settings", zap.Error(err))
		return model.DefaultSettings()
	}
	if !ok || raw == "" {
		return model.DefaultSettings()
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		r.log.Warn("decode settings", zap.Error(err))
		return model.DefaultSettings()
	}
	return settings
}

// Save overwrites the settings record.
func (r *SettingsRepository) Save(settings model.Settings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		r.log.Error("encode settings", zap.Error(err))
		return
	}
	if err := r.store.Set(settingsKey, string(raw)); err != nil {
		r.log.Error("save settings", zap.Error(err))
	}
}
