package view

import (
	"math"

	"task-manager/internal/model"
)

// Stats summarizes completion across a task collection.
type Stats struct {
	Total           int
	Completed       int
	Pending         int
	ProgressPercent int
}

// Breakdown counts tasks within one grouping bucket.
type Breakdown struct {
	Total     int
	Completed int
}

// ComputeStats returns overall counts and the rounded completion percentage.
// An empty collection reports zero progress rather than dividing by zero.
func (e *Engine) ComputeStats(tasks []model.Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.ProgressPercent = int(math.Round(100 * float64(stats.Completed) / float64(stats.Total)))
	}
	return stats
}

// GroupByCategory counts tasks per category. Every known category is present
// in the result even when empty; legacy labels outside the current
// enumeration get their own bucket so old records stay visible.
func (e *Engine) GroupByCategory(tasks []model.Task) map[model.Category]Breakdown {
	groups := make(map[model.Category]Breakdown, len(model.Categories()))
	for _, c := range model.Categories() {
		groups[c] = Breakdown{}
	}
	for _, t := range tasks {
		b := groups[t.Category]
		b.Total++
		if t.Completed {
			b.Completed++
		}
		groups[t.Category] = b
	}
	return groups
}

// GroupByPriority counts tasks per priority level; all three levels are
// always present.
func (e *Engine) GroupByPriority(tasks []model.Task) map[model.Priority]Breakdown {
	groups := map[model.Priority]Breakdown{
		model.PriorityHigh:   {},
		model.PriorityMedium: {},
		model.PriorityLow:    {},
	}
	for _, t := range tasks {
		b := groups[t.Priority]
		b.Total++
		if t.Completed {
			b.Completed++
		}
		groups[t.Priority] = b
	}
	return groups
}
