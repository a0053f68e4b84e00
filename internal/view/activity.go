package view

import (
	"fmt"
	"time"

	"task-manager/internal/model"
)

// DayActivity is one day's completed/pending split.
type DayActivity struct {
	Day       string // short weekday name, e.g. "Mon"
	Date      time.Time
	Completed int
	Pending   int
}

// WeeklyActivity returns one entry per day of the ISO week containing now,
// Monday first, counting tasks due that day.
func (e *Engine) WeeklyActivity(tasks []model.Task, now time.Time) []DayActivity {
	buckets := e.BucketByDueDate(tasks)
	start := startOfWeek(now)

	days := make([]DayActivity, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		entry := DayActivity{Day: day.Format("Mon"), Date: day}
		for _, t := range buckets[day.Format(model.DueDateLayout)] {
			if t.Completed {
				entry.Completed++
			} else {
				entry.Pending++
			}
		}
		days = append(days, entry)
	}
	return days
}

// WeekActivity is one calendar week's completed/pending split.
type WeekActivity struct {
	Name      string // "Week 1" .. "Week n" within the month
	Start     time.Time
	Completed int
	Pending   int
}

// MonthlyProductivity splits the calendar month containing now into weeks
// (starting from the week containing the 1st) and counts tasks due in each.
func (e *Engine) MonthlyProductivity(tasks []model.Task, now time.Time) []WeekActivity {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var weeks []WeekActivity
	for start, i := startOfWeek(monthStart), 1; !start.After(monthEnd); start, i = start.AddDate(0, 0, 7), i+1 {
		end := start.AddDate(0, 0, 6)
		week := WeekActivity{Name: fmt.Sprintf("Week %d", i), Start: start}
		for _, t := range e.filterByDue(tasks, func(due time.Time) bool {
			return !due.Before(start) && !due.After(end)
		}) {
			if t.Completed {
				week.Completed++
			} else {
				week.Pending++
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}
