package view

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"task-manager/internal/model"
)

// FilterToday returns tasks due on the calendar day containing now.
func (e *Engine) FilterToday(tasks []model.Task, now time.Time) []model.Task {
	today := dateOnly(now)
	return e.filterByDue(tasks, func(due time.Time) bool {
		return due.Equal(today)
	})
}

// FilterWeek returns tasks due within the ISO week (Monday through Sunday)
// containing now.
func (e *Engine) FilterWeek(tasks []model.Task, now time.Time) []model.Task {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 6)
	return e.filterByDue(tasks, func(due time.Time) bool {
		return !due.Before(start) && !due.After(end)
	})
}

// FilterSearch returns tasks whose title or description contains the query,
// case-insensitively. A blank query returns the input unchanged.
func (e *Engine) FilterSearch(tasks []model.Task, query string) []model.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tasks
	}

	matched := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			matched = append(matched, t)
		}
	}
	return matched
}

// FilterCompleted returns only completed tasks.
func (e *Engine) FilterCompleted(tasks []model.Task) []model.Task {
	return filterBy(tasks, func(t model.Task) bool { return t.Completed })
}

// FilterPending returns only tasks not yet completed.
func (e *Engine) FilterPending(tasks []model.Task) []model.Task {
	return filterBy(tasks, func(t model.Task) bool { return !t.Completed })
}

// FilterCategory returns only tasks in the given category.
func (e *Engine) FilterCategory(tasks []model.Task, category model.Category) []model.Task {
	return filterBy(tasks, func(t model.Task) bool { return t.Category == category })
}

// filterByDue keeps tasks whose parsed due date satisfies keep. Tasks with
// unparseable dates are skipped and logged.
func (e *Engine) filterByDue(tasks []model.Task, keep func(due time.Time) bool) []model.Task {
	matched := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		due, err := t.DueOn()
		if err != nil {
			e.log.Warn("skip task with bad due date",
				zap.String("id", t.ID), zap.String("dueDate", t.DueDate))
			continue
		}
		if keep(due) {
			matched = append(matched, t)
		}
	}
	return matched
}

func filterBy(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	matched := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	return matched
}
