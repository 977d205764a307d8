package tasks

import "github.com/trizenhq/trizen/internal/model"

type FilterType string

const (
	FilterAll     FilterType = "all"
	FilterPending FilterType = "pending"
)

// Filter projects the visible subset of the collection. The pending filter
// drops completed tasks, the priority filter keeps only matching priorities,
// and the two compose conjunctively. Collection order is preserved.
func Filter(tasks []model.Task, ftype FilterType, priority *model.Priority) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if ftype == FilterPending && t.Completed {
			continue
		}
		if priority != nil && t.Priority != *priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Completed returns only completed tasks, in collection order.
func Completed(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

type Counts struct {
	Pending   int
	Completed int
}

func Count(tasks []model.Task) Counts {
	var c Counts
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}
