// Package repository owns read/write access to the persisted task, note,
// settings, and session records. Unreadable blobs degrade to empty
// collections or defaults; failed writes are logged and the intended
// in-memory state is still returned, so callers must not assume a returned
// collection was durably persisted.
package repository

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"task-manager/internal/model"
	"task-manager/internal/storage"
)

// Storage keys, one blob per record family.
const (
	tasksKey    = "tasks"
	notesKey    = "notes"
	settingsKey = "settings"
	authKey     = "auth"
)

// TaskPatch selects task fields to overwrite on update. Nil fields are left
// untouched.
type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *string
	Category     *model.Category
	Priority     *model.Priority
	Completed    *bool
	ReminderTime *string
}

func (p TaskPatch) apply(t *model.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.ReminderTime != nil {
		t.ReminderTime = *p.ReminderTime
	}
}

// TaskRepository handles CRUD for the task collection.
type TaskRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewTaskRepository(store storage.Store, log *zap.Logger) *TaskRepository {
	return &TaskRepository{store: store, log: log}
}

// List returns the full task collection in insertion order. An absent or
// unreadable blob yields an empty collection.
func (r *TaskRepository) List() []model.Task {
	tasks, err := r.load()
	if err != nil {
		r.log.Warn("load tasks", zap.Error(err))
		return []model.Task{}
	}
	return tasks
}

// Create appends the task to the collection and persists it, returning the
// new full collection. The caller supplies the id; the repository neither
// de-duplicates nor merges.
func (r *TaskRepository) Create(task model.Task) []model.Task {
	tasks := append(r.List(), task)
	r.persist(tasks)
	return tasks
}

// Update merges patch over the task with the given id. A missing id is a
// no-op; the collection is persisted either way.
func (r *TaskRepository) Update(id string, patch TaskPatch) []model.Task {
	tasks := r.List()
	for i := range tasks {
		if tasks[i].ID == id {
			patch.apply(&tasks[i])
			break
		}
	}
	r.persist(tasks)
	return tasks
}

// Delete removes the task with the given id. A missing id is a no-op.
func (r *TaskRepository) Delete(id string) []model.Task {
	tasks := r.List()
	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.persist(kept)
	return kept
}

// Clear replaces the collection with an empty one and persists.
func (r *TaskRepository) Clear() {
	r.persist([]model.Task{})
}

func (r *TaskRepository) load() ([]model.Task, error) {
	raw, ok, err := r.store.Get(tasksKey)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if !ok || raw == "" {
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) persist(tasks []model.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		r.log.Error("encode tasks", zap.Error(err))
		return
	}
	if err := r.store.Set(tasksKey, string(raw)); err != nil {
		r.log.Error("save tasks", zap.Int("count", len(tasks)), zap.Error(err))
	}
}
