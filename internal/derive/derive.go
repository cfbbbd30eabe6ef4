// Package derive computes view data from a task store snapshot. Every
// function is pure: inputs are never modified and results never alias
// input slices.
package derive

import (
	"slices"
	"strings"
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

const DefaultHorizonDays = 7

// VisibleTasks applies the snapshot's category, priority and search
// filters. All three must match; an unset filter matches everything.
func VisibleTasks(snap model.Snapshot) []model.Task {
	q := strings.ToLower(snap.Search)
	var out []model.Task
	for _, t := range snap.Tasks {
		if snap.Category != nil && t.Category != *snap.Category {
			continue
		}
		if snap.Priority != nil && t.Priority != *snap.Priority {
			continue
		}
		if q != "" && !matchesSearch(t, q) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func matchesSearch(t model.Task, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	return slices.ContainsFunc(t.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

func priorityRank(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return 0
	case model.PriorityMedium:
		return 1
	case model.PriorityLow:
		return 2
	}
	return 3
}

// SortForDisplay orders incomplete tasks first, then by priority
// high, medium, low. Ties keep their input order.
func SortForDisplay(tasks []model.Task) []model.Task {
	out := cloneTasks(tasks)
	slices.SortStableFunc(out, func(a, b model.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return priorityRank(a.Priority) - priorityRank(b.Priority)
	})
	return out
}

// PendingTasks returns the tasks that are not completed.
func PendingTasks(tasks []model.Task) []model.Task {
	return filter(tasks, func(t model.Task) bool { return !t.Completed })
}

// LinkedTasks returns the tasks linked to a commit or pull request.
func LinkedTasks(tasks []model.Task) []model.Task {
	return filter(tasks, func(t model.Task) bool { return t.GitHubLink.HasActivity() })
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// SameDay compares the calendar day of a and b in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
