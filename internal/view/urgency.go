package view

import (
	"time"

	"go.uber.org/zap"

	"task-manager/internal/model"
)

// Urgency classifies how soon a task is due relative to a reference day.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "dueToday"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyLater    Urgency = "later"
)

// upcomingWindowDays is how far past today a task still counts as upcoming.
const upcomingWindowDays = 3

// ClassifyUrgency maps a task to exactly one urgency class. A task due at the
// start of today is dueToday, not overdue; upcoming covers the next three
// days after today. Unparseable due dates classify as later.
func (e *Engine) ClassifyUrgency(task model.Task, now time.Time) Urgency {
	due, err := task.DueOn()
	if err != nil {
		e.log.Warn("classify task with bad due date",
			zap.String("id", task.ID), zap.String("dueDate", task.DueDate))
		return UrgencyLater
	}

	today := dateOnly(now)
	switch {
	case due.Before(today):
		return UrgencyOverdue
	case due.Equal(today):
		return UrgencyDueToday
	case !due.After(today.AddDate(0, 0, upcomingWindowDays)):
		return UrgencyUpcoming
	default:
		return UrgencyLater
	}
}

// Reminders groups the pending tasks by urgency, each group ordered by due
// date ascending.
type Reminders struct {
	Overdue  []model.Task
	DueToday []model.Task
	Upcoming []model.Task
	Later    []model.Task
}

// BuildReminders filters out completed tasks, sorts the rest by due date,
// and splits them into urgency groups.
func (e *Engine) BuildReminders(tasks []model.Task, now time.Time) Reminders {
	pending := e.Sort(e.FilterPending(tasks), SortByDate, false)

	var r Reminders
	for _, t := range pending {
		switch e.ClassifyUrgency(t, now) {
		case UrgencyOverdue:
			r.Overdue = append(r.Overdue, t)
		case UrgencyDueToday:
			r.DueToday = append(r.DueToday, t)
		case UrgencyUpcoming:
			r.Upcoming = append(r.Upcoming, t)
		default:
			r.Later = append(r.Later, t)
		}
	}
	return r
}
