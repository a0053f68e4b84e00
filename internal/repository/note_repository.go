package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"task-manager/internal/model"
	"task-manager/internal/storage"
)

// NotePatch selects note fields to overwrite on update. Nil fields are left
// untouched.
type NotePatch struct {
	Title   *string
	Content *string
}

func (p NotePatch) apply(n *model.Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}

// NoteRepository handles CRUD for the note collection.
type NoteRepository struct {
	store storage.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewNoteRepository(store storage.Store, log *zap.Logger) *NoteRepository {
	return &NoteRepository{store: store, log: log, now: time.Now}
}

// List returns the full note collection in insertion order. An absent or
// unreadable blob yields an empty collection.
func (r *NoteRepository) List() []model.Note {
	notes, err := r.load()
	if err != nil {
		r.log.Warn("load notes", zap.Error(err))
		return []model.Note{}
	}
	return notes
}

// Create appends the note to the collection and persists it, returning the
// new full collection.
func (r *NoteRepository) Create(note model.Note) []model.Note {
	notes := append(r.List(), note)
	r.persist(notes)
	return notes
}

// Update merges patch over the note with the given id and stamps UpdatedAt,
// whether or not any field changed. A missing id is a no-op.
func (r *NoteRepository) Update(id string, patch NotePatch) []model.Note {
	notes := r.List()
	for i := range notes {
		if notes[i].ID == id {
			patch.apply(&notes[i])
			notes[i].UpdatedAt = r.now()
			break
		}
	}
	r.persist(notes)
	return notes
}

// Delete removes the note with the given id. A missing id is a no-op.
func (r *NoteRepository) Delete(id string) []model.Note {
	notes := r.List()
	kept := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	r.persist(kept)
	return kept
}

// Clear replaces the collection with an empty one and persists.
func (r *NoteRepository) Clear() {
	r.persist([]model.Note{})
}

func (r *NoteRepository) load() ([]model.Note, error) {
	raw, ok, err := r.store.Get(notesKey)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	if !ok || raw == "" {
		return []model.Note{}, nil
	}

	var notes []model.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) persist(notes []model.Note) {
	raw, err := json.Marshal(notes)
	if err != nil {
		r.log.Error("encode notes", zap.Error(err))
		return
	}
	if err := r.store.Set(notesKey, string(raw)); err != nil {
		r.log.Error("save notes", zap.Int("count", len(notes)), zap.Error(err))
	}
}
