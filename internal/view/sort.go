package view

import (
	"sort"

	"task-manager/internal/model"
)

// SortBy selects the sort criterion for task lists.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByPriority SortBy = "priority"
	SortByCategory SortBy = "category"
)

// Sort returns a stably sorted copy of tasks. Unless the caller is viewing
// the completed tab (completedView), pending tasks always sort before
// completed ones regardless of criterion. Tasks with unparseable due dates
// sort last under SortByDate.
func (e *Engine) Sort(tasks []model.Task, by SortBy, completedView bool) []model.Task {
	sorted := append([]model.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !completedView && a.Completed != b.Completed {
			return !a.Completed
		}

		switch by {
		case SortByPriority:
			return a.Priority.Rank() < b.Priority.Rank()
		case SortByCategory:
			return a.Category < b.Category
		default:
			return dueBefore(a, b)
		}
	})
	return sorted
}

func dueBefore(a, b model.Task) bool {
	aDue, aErr := a.DueOn()
	bDue, bErr := b.DueOn()
	switch {
	case aErr != nil:
		return false
	case bErr != nil:
		return true
	default:
		return aDue.Before(bDue)
	}
}

// RecentNotes returns a copy of notes sorted by UpdatedAt, newest first.
func (e *Engine) RecentNotes(notes []model.Note) []model.Note {
	sorted := append([]model.Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted
}
