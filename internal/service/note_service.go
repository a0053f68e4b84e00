package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// NoteService validates input and drives the note repository.
type NoteService struct {
	repo *repository.NoteRepository
	now  func() time.Time
}

func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo, now: time.Now}
}

// CreateNote builds a note with a fresh id and timestamps, persists it, and
// returns it. Title and content must both be non-empty.
func (s *NoteService) CreateNote(title, content string) (model.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Note{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return model.Note{}, fmt.Errorf("content is required")
	}

	now := s.now()
	note := model.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.repo.Create(note)
	return note, nil
}

// ListNotes returns the full note collection.
func (s *NoteService) ListNotes() []model.Note {
	return s.repo.List()
}

// UpdateNote merges the patch over the note with the given id. Fields that
// are present must be non-empty.
func (s *NoteService) UpdateNote(id string, patch repository.NotePatch) ([]model.Note, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}
	return s.repo.Update(id, patch), nil
}

// DeleteNote removes the note with the given id.
func (s *NoteService) DeleteNote(id string) []model.Note {
	return s.repo.Delete(id)
}

// ClearNotes wipes the whole collection.
func (s *NoteService) ClearNotes() {
	s.repo.Clear()
}
