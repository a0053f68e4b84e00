package model

import "time"

// Category groups tasks by area of life.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryShopping Category = "shopping"
	CategoryFitness  Category = "fitness"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryStudy,
		CategoryShopping,
		CategoryFitness,
	}
}

// Priority marks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort rank of a priority, high first. Unknown priorities
// sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// DueDateLayout is the calendar-date form tasks carry. Due dates are
// date-only; time of day is not part of task identity.
const DueDateLayout = "2006-01-02"

// Task represents a single item in the planner.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      string    `json:"dueDate"`
	Category     Category  `json:"category"`
	Priority     Priority  `json:"priority"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
	ReminderTime string    `json:"reminderTime,omitempty"`
}

// DueOn parses the task due date. Dates are stored as "2006-01-02"; full
// RFC 3339 timestamps from older records are accepted and truncated to the
// day.
func (t Task) DueOn() (time.Time, error) {
	if d, err := time.Parse(DueDateLayout, t.DueDate); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, t.DueDate)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
