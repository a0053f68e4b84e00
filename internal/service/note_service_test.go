package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"task-manager/internal/repository"
	"task-manager/internal/service"
	"task-manager/internal/storage"
)

func newNoteService() *service.NoteService {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	return service.NewNoteService(repo)
}

func TestCreateNote(t *testing.T) {
	svc := newNoteService()

	note, err := svc.CreateNote("Shopping list", "milk, eggs")
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	listed := svc.ListNotes()
	require.Len(t, listed, 1)
	assert.Equal(t, "Shopping list", listed[0].Title)
}

func TestCreateNoteValidation(t *testing.T) {
	svc := newNoteService()

	_, err := svc.CreateNote("", "content")
	assert.Error(t, err)

	_, err = svc.CreateNote("title", "   ")
	assert.Error(t, err)

	assert.Empty(t, svc.ListNotes())
}

func TestUpdateNoteValidation(t *testing.T) {
	svc := newNoteService()
	note, err := svc.CreateNote("Ideas", "original")
	require.NoError(t, err)

	empty := " "
	_, err = svc.UpdateNote(note.ID, repository.NotePatch{Title: &empty})
	assert.Error(t, err)

	content := "revised"
	notes, err := svc.UpdateNote(note.ID, repository.NotePatch{Content: &content})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "revised", notes[0].Content)
	assert.False(t, notes[0].UpdatedAt.Before(note.UpdatedAt))
}

func TestDeleteAndClearNotes(t *testing.T) {
	svc := newNoteService()
	note, err := svc.CreateNote("One", "content")
	require.NoError(t, err)
	_, err = svc.CreateNote("Two", "content")
	require.NoError(t, err)

	remaining := svc.DeleteNote(note.ID)
	assert.Len(t, remaining, 1)

	svc.ClearNotes()
	assert.Empty(t, svc.ListNotes())
}
