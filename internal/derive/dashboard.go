package derive

import (
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

type CategoryCount struct {
	Category model.Category
	Count    int
}

// CategoryHistogram counts tasks per category, in first-seen order.
func CategoryHistogram(tasks []model.Task) []CategoryCount {
	var out []CategoryCount
	index := make(map[model.Category]int)
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryCount{Category: t.Category})
		}
		out[i].Count++
	}
	return out
}

type DayCount struct {
	Date  time.Time
	Label string
	Count int
}

// CompletionTrend returns seven buckets, today-6 through today. A bucket
// counts completed tasks created on that day: there is no completion
// timestamp, so creation day stands in for it.
func CompletionTrend(tasks []model.Task, today time.Time) []DayCount {
	start := StartOfDay(today).AddDate(0, 0, -6)
	out := make([]DayCount, 7)
	for i := range out {
		day := start.AddDate(0, 0, i)
		out[i] = DayCount{Date: day, Label: day.Format("Jan 2")}
		for _, t := range tasks {
			if t.Completed && SameDay(t.CreatedAt, day) {
				out[i].Count++
			}
		}
	}
	return out
}

// TasksDueOn returns tasks whose due date falls on the same calendar day
// as date.
func TasksDueOn(tasks []model.Task, date time.Time) []model.Task {
	return filter(tasks, func(t model.Task) bool {
		return t.DueDate != nil && SameDay(*t.DueDate, date)
	})
}

// OverdueTasks returns incomplete tasks due strictly before now.
func OverdueTasks(tasks []model.Task, now time.Time) []model.Task {
	return filter(tasks, func(t model.Task) bool {
		return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
	})
}

// UpcomingTasks returns incomplete tasks due after now and no later than
// horizonDays days from now.
func UpcomingTasks(tasks []model.Task, now time.Time, horizonDays int) []model.Task {
	limit := now.AddDate(0, 0, horizonDays)
	return filter(tasks, func(t model.Task) bool {
		return !t.Completed && t.DueDate != nil && t.DueDate.After(now) && !t.DueDate.After(limit)
	})
}

// Summary is the dashboard aggregate.
type Summary struct {
	Total               int
	Completed           int
	Pending             int
	HighPriorityPending int

	DueToday []model.Task
	Overdue  []model.Task
	Upcoming []model.Task

	Categories []CategoryCount
	Trend      []DayCount
}

func Summarize(tasks []model.Task, now time.Time, horizonDays int) Summary {
	s := Summary{
		Total:      len(tasks),
		DueToday:   TasksDueOn(tasks, now),
		Overdue:    OverdueTasks(tasks, now),
		Upcoming:   UpcomingTasks(tasks, now, horizonDays),
		Categories: CategoryHistogram(tasks),
		Trend:      CompletionTrend(tasks, now),
	}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		if t.Priority == model.PriorityHigh {
			s.HighPriorityPending++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}
