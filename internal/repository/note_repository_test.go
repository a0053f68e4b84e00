package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/storage"
)

func sampleNote(id, title string) model.Note {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return model.Note{
		ID:        id,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNoteRepositoryRoundTrip(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())

	note := sampleNote("n1", "Groceries")
	repo.Create(note)

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, note, listed[0])
}

func TestNoteRepositoryUpdateStampsUpdatedAt(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	note := sampleNote("n1", "Ideas")
	repo.Create(note)

	content := "new content"
	updated := repo.Update("n1", repository.NotePatch{Content: &content})

	require.Len(t, updated, 1)
	assert.Equal(t, "new content", updated[0].Content)
	assert.False(t, updated[0].UpdatedAt.Before(note.UpdatedAt))
	assert.False(t, updated[0].UpdatedAt.Before(updated[0].CreatedAt))
}

// The timestamp advances even when the patch changes nothing.
func TestNoteRepositoryEmptyPatchStillStampsUpdatedAt(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	note := sampleNote("n1", "Ideas")
	repo.Create(note)

	first := repo.Update("n1", repository.NotePatch{})
	require.Len(t, first, 1)
	stamp := first[0].UpdatedAt

	second := repo.Update("n1", repository.NotePatch{})
	require.Len(t, second, 1)
	assert.False(t, second[0].UpdatedAt.Before(stamp))
	assert.Equal(t, note.Title, second[0].Title)
	assert.Equal(t, note.Content, second[0].Content)
}

func TestNoteRepositoryUpdateMissingIDIsNoop(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	repo.Create(sampleNote("n1", "Ideas"))

	before := repo.List()
	title := "changed"
	after := repo.Update("missing", repository.NotePatch{Title: &title})
	assert.Equal(t, before, after)
}

func TestNoteRepositoryDelete(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	repo.Create(sampleNote("n1", "Keep"))
	repo.Create(sampleNote("n2", "Drop"))

	remaining := repo.Delete("n2")
	require.Len(t, remaining, 1)
	assert.Equal(t, "n1", remaining[0].ID)

	// Second delete of the same id is a no-op.
	assert.Len(t, repo.Delete("n2"), 1)
}

func TestNoteRepositoryCorruptBlobReadsAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("notes", "not json at all"))

	repo := repository.NewNoteRepository(store, zap.NewNop())
	assert.Empty(t, repo.List())
}

func TestNoteRepositoryClear(t *testing.T) {
	repo := repository.NewNoteRepository(storage.NewMemoryStore(), zap.NewNop())
	repo.Create(sampleNote("n1", "One"))
	repo.Clear()
	assert.Empty(t, repo.List())
}
