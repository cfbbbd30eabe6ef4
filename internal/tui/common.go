package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewCalendar
	viewAchievements
	viewGitHub
	viewSettings
)

var viewNames = []string{"Dashboard", "Tasks", "Calendar", "Achievements", "GitHub", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

type themeChangedMsg struct {
	dark bool
}

// --- Helpers ---

const dateLayout = "2006-01-02"

func formatDue(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("Jan 2")
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

func shortCommit(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// progressBar renders frac (0..1) as a bar of width cells.
func progressBar(frac float64, width int) string {
	if width < 1 {
		return ""
	}
	filled := int(frac*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

// parseDue accepts an empty string (no date) or YYYY-MM-DD in local time.
func parseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("use YYYY-MM-DD")
	}
	return &d, nil
}

func validateDue(s string) error {
	_, err := parseDue(s)
	return err
}

// nextCategory cycles nil -> each category -> nil.
func nextCategory(cur *model.Category) *model.Category {
	return cycle(model.Categories, cur)
}

// nextPriority cycles nil -> high -> medium -> low -> nil.
func nextPriority(cur *model.Priority) *model.Priority {
	return cycle(model.Priorities, cur)
}

func cycle[T comparable](all []T, cur *T) *T {
	if cur == nil {
		v := all[0]
		return &v
	}
	for i, v := range all {
		if v == *cur && i+1 < len(all) {
			next := all[i+1]
			return &next
		}
	}
	return nil
}
