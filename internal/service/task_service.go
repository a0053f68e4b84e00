package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title        string
	Description  string
	DueDate      string
	Category     model.Category
	Priority     model.Priority
	ReminderTime string
}

// TaskService validates input and drives the task repository. Validation
// lives here: the repository persists whatever well-formed record it is
// handed.
type TaskService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo, now: time.Now}
}

// CreateTask builds a task with a fresh id and creation timestamp, persists
// it, and returns it.
func (s *TaskService) CreateTask(input TaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("title is required")
	}
	if _, err := time.Parse(model.DueDateLayout, input.DueDate); err != nil {
		return model.Task{}, fmt.Errorf("due date must be %s: %w", model.DueDateLayout, err)
	}
	if input.Category == "" {
		input.Category = model.CategoryPersonal
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	task := model.Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  input.Description,
		DueDate:      input.DueDate,
		Category:     input.Category,
		Priority:     input.Priority,
		CreatedAt:    s.now(),
		ReminderTime: input.ReminderTime,
	}
	s.repo.Create(task)
	return task, nil
}

// ListTasks returns the full task collection.
func (s *TaskService) ListTasks() []model.Task {
	return s.repo.List()
}

// UpdateTask merges the patch over the task with the given id.
func (s *TaskService) UpdateTask(id string, patch repository.TaskPatch) []model.Task {
	return s.repo.Update(id, patch)
}

// ToggleComplete flips the completion state of the task with the given id.
// An unknown id leaves the collection unchanged.
func (s *TaskService) ToggleComplete(id string) []model.Task {
	tasks := s.repo.List()
	for _, t := range tasks {
		if t.ID == id {
			completed := !t.Completed
			return s.repo.Update(id, repository.TaskPatch{Completed: &completed})
		}
	}
	return tasks
}

// DeleteTask removes the task with the given id.
func (s *TaskService) DeleteTask(id string) []model.Task {
	return s.repo.Delete(id)
}

// ClearTasks wipes the whole collection.
func (s *TaskService) ClearTasks() {
	s.repo.Clear()
}
