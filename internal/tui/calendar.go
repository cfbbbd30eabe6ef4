package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/tracker"
)

type calendarModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	selected time.Time
	weeks    [][]derive.DayCell
	tasks    []model.Task
}

func newCalendarModel(t *tracker.Tracker) calendarModel {
	return calendarModel{
		tracker:  t,
		selected: derive.StartOfDay(time.Now()),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type calendarDataMsg struct {
	tasks []model.Task
}

func (c calendarModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return calendarDataMsg{tasks: c.tracker.Snapshot().Tasks}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarDataMsg:
		c.tasks = msg.tasks
		c.weeks = derive.MonthGrid(c.selected, c.tasks)
		return c, nil

	case tea.KeyMsg:
		prev := c.selected
		switch {
		case key.Matches(msg, keys.Left):
			c.selected = c.selected.AddDate(0, 0, -1)
		case key.Matches(msg, keys.Right):
			c.selected = c.selected.AddDate(0, 0, 1)
		case key.Matches(msg, keys.Up):
			c.selected = c.selected.AddDate(0, 0, -7)
		case key.Matches(msg, keys.Down):
			c.selected = c.selected.AddDate(0, 0, 7)
		case key.Matches(msg, keys.PrevMonth):
			c.selected = shiftMonth(c.selected, -1)
		case key.Matches(msg, keys.NextMonth):
			c.selected = shiftMonth(c.selected, 1)
		case key.Matches(msg, keys.Back):
			c.selected = derive.StartOfDay(time.Now())
		}
		if c.selected.Month() != prev.Month() || c.selected.Year() != prev.Year() || c.weeks == nil {
			c.weeks = derive.MonthGrid(c.selected, c.tasks)
		}
	}
	return c, nil
}

// shiftMonth moves by n months, clamping the day to the target month's
// length so Jan 31 + 1 lands on the last day of February.
func shiftMonth(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(t.Day(), last)-1)
}

func (c calendarModel) view() string {
	w := c.width - 4
	title := titleStyle.Render(c.selected.Format("January 2006"))

	var header []string
	for _, d := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header = append(header, dayStyle.Foreground(colorMuted).Render(d))
	}

	rows := []string{title, "", lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	today := time.Now()
	for _, week := range c.weeks {
		var cells []string
		for _, cell := range week {
			cells = append(cells, c.renderCell(cell, today))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, "", c.renderDay(w))
	rows = append(rows, "", mutedStyle.Render("  ←/→/↑/↓: move  [/]: month  esc: today"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c calendarModel) renderCell(cell derive.DayCell, today time.Time) string {
	if cell.Empty {
		return dayStyle.Render("")
	}

	label := fmt.Sprint(cell.Date.Day())
	if n := len(cell.Tasks); n > 0 {
		label = fmt.Sprintf("%d·%d", cell.Date.Day(), n)
	}

	switch {
	case derive.SameDay(cell.Date, c.selected):
		return selectedDayStyle.Render(label)
	case derive.SameDay(cell.Date, today):
		return todayStyle.Render(label)
	case len(cell.Tasks) > 0:
		return busyDayStyle.Render(label)
	}
	return dayStyle.Render(label)
}

func (c calendarModel) renderDay(w int) string {
	due := derive.TasksDueOn(c.tasks, c.selected)
	title := highlightStyle.Render(c.selected.Format("Monday, Jan 2"))
	if len(due) == 0 {
		return title + "\n" + mutedStyle.Render("  Nothing due")
	}

	rows := []string{title}
	for _, t := range derive.SortForDisplay(due) {
		check := "[ ]"
		style := normalItemStyle
		if t.Completed {
			check = successStyle.Render("[✓]")
			style = doneItemStyle
		}
		rows = append(rows, fmt.Sprintf("  %s %s %s", check,
			priorityStyle(t.Priority).Render("●"),
			style.Render(truncate(t.Title, w-12))))
	}
	return strings.Join(rows, "\n")
}
