package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/view"
)

// ReminderService builds human-readable summaries for daily notifications.
type ReminderService struct {
	tasks *repository.TaskRepository
	views *view.Engine
}

func NewReminderService(tasks *repository.TaskRepository, views *view.Engine) *ReminderService {
	return &ReminderService{tasks: tasks, views: views}
}

// DailySummary renders the pending tasks grouped by urgency as an HTML
// message for the given day.
func (s *ReminderService) DailySummary(now time.Time) string {
	tasks := s.tasks.List()
	reminders := s.views.BuildReminders(tasks, now)
	stats := s.views.ComputeStats(tasks)

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily summary</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("Mon, 02 Jan 2006")))

	writeSection(&builder, "⚠️ <b>Overdue</b>", reminders.Overdue, "— nothing overdue")
	writeSection(&builder, "⏰ <b>Due today</b>", reminders.DueToday, "— nothing due today")
	writeSection(&builder, "⏳ <b>Upcoming</b>", reminders.Upcoming, "— nothing in the next few days")

	builder.WriteString(fmt.Sprintf("\n✅ %d of %d tasks done (%d%%)",
		stats.Completed, stats.Total, stats.ProgressPercent))

	return strings.TrimSpace(builder.String())
}

func writeSection(builder *strings.Builder, header string, tasks []model.Task, empty string) {
	builder.WriteString(header)
	builder.WriteByte('\n')
	if len(tasks) == 0 {
		builder.WriteString(empty)
		builder.WriteByte('\n')
	} else {
		for _, task := range tasks {
			builder.WriteString(formatTask(task))
		}
	}
	builder.WriteByte('\n')
}

func formatTask(task model.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("• %s", html.EscapeString(strings.TrimSpace(task.Title))))
	sb.WriteString(fmt.Sprintf(" <i>(%s, %s)</i>", task.Category, task.Priority))

	if due, err := task.DueOn(); err == nil {
		sb.WriteString(fmt.Sprintf(" — %s", due.Format("02 Jan")))
	}
	if task.ReminderTime != "" {
		sb.WriteString(fmt.Sprintf(" 🔔 %s", html.EscapeString(task.ReminderTime)))
	}

	sb.WriteByte('\n')
	return sb.String()
}
