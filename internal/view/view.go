// Package view derives filtered, sorted, and aggregated projections of the
// task and note collections. Nothing here reads or writes storage: every
// method is deterministic given its inputs and the supplied "now".
package view

import (
	"time"

	"go.uber.org/zap"
)

// Engine computes derived views. It carries only a logger, used when a
// malformed record has to be skipped.
type Engine struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

// dateOnly truncates t to its calendar date, normalized to UTC so stored
// date-only due dates compare directly.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of the ISO week containing t.
func startOfWeek(t time.Time) time.Time {
	d := dateOnly(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, 1-weekday)
}
