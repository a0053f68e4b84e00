package repository

import (
	"strconv"

	"go.uber.org/zap"

	"task-manager/internal/storage"
)

// SessionRepository persists the single authenticated flag. The flag is the
// sole gate for everything except login; its initial state is anonymous.
type SessionRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewSessionRepository(store storage.Store, log *zap.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

// IsAuthenticated reports whether a session is active. An absent or
// unreadable flag counts as anonymous.
func (r *SessionRepository) IsAuthenticated() bool {
	raw, ok, err := r.store.Get(authKey)
	if err != nil {
		r.log.Warn("read auth flag", zap.Error(err))
		return false
	}
	return ok && raw == "true"
}

// SetAuthenticated records the session state.
func (r *SessionRepository) SetAuthenticated(authenticated bool) {
	if err := r.store.Set(authKey, strconv.FormatBool(authenticated)); err != nil {
		r.log.Error("save auth flag", zap.Error(err))
	}
}

// Logout clears the session flag.
func (r *SessionRepository) Logout() {
	if err := r.store.Delete(authKey); err != nil {
		r.log.Error("clear auth flag", zap.Error(err))
	}
}
