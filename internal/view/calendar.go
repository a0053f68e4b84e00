package view

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"task-manager/internal/model"
)

// BucketByDueDate groups tasks by calendar date, keyed "2006-01-02". Tasks
// with unparseable due dates are logged and excluded.
func (e *Engine) BucketByDueDate(tasks []model.Task) map[string][]model.Task {
	buckets := make(map[string][]model.Task)
	for _, t := range tasks {
		due, err := t.DueOn()
		if err != nil {
			e.log.Warn("skip task with bad due date",
				zap.String("id", t.ID), zap.String("dueDate", t.DueDate))
			continue
		}
		key := due.Format(model.DueDateLayout)
		buckets[key] = append(buckets[key], t)
	}
	return buckets
}

// TasksOn returns the tasks due on the given calendar date, pending tasks
// first and higher priority first within each half.
func (e *Engine) TasksOn(tasks []model.Task, date time.Time) []model.Task {
	day := dateOnly(date)
	due := e.filterByDue(tasks, func(d time.Time) bool { return d.Equal(day) })

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
	return due
}
