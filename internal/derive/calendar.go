package derive

import (
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

// DayCell is one slot of a month grid. Padding cells have Empty set and a
// zero Date.
type DayCell struct {
	Date  time.Time
	Empty bool
	Tasks []model.Task
}

// MonthGrid lays out the month containing month as Sunday-to-Saturday
// weeks, padding the first and last week with empty cells.
func MonthGrid(month time.Time, tasks []model.Task) [][]DayCell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	var cells []DayCell
	for range int(first.Weekday()) {
		cells = append(cells, DayCell{Empty: true})
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cells = append(cells, DayCell{Date: d, Tasks: TasksDueOn(tasks, d)})
	}
	for range int(time.Saturday - last.Weekday()) {
		cells = append(cells, DayCell{Empty: true})
	}

	weeks := make([][]DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
