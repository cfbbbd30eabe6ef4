package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/tracker"
)

type dashboardModel struct {
	tracker *tracker.Tracker
	horizon int
	width   int
	height  int

	summary  derive.Summary
	user     model.User
	progress derive.LevelProgress

	chart barchart.Model
}

func newDashboardModel(t *tracker.Tracker, horizon int) dashboardModel {
	return dashboardModel{
		tracker: t,
		horizon: horizon,
		chart:   barchart.New(60, 10),
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	summary derive.Summary
	user    model.User
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		snap := d.tracker.Snapshot()
		return dashboardDataMsg{
			summary: derive.Summarize(snap.Tasks, time.Now(), d.horizon),
			user:    snap.User,
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.summary = msg.summary
		d.user = msg.user
		d.progress = derive.Progress(msg.user)
		d.buildChart()
		return d, nil
	}
	return d, nil
}

func (d *dashboardModel) buildChart() {
	chartWidth := d.width/2 - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	d.chart = barchart.New(chartWidth, 10)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, day := range d.summary.Trend {
		bars = append(bars, barchart.BarData{
			Label: day.Label,
			Values: []barchart.BarValue{{
				Name:  "completed",
				Value: float64(day.Count),
				Style: barStyle,
			}},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4
	half := contentWidth/2 - 1

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		d.renderStatsPanel(half),
		d.renderLevelPanel(contentWidth-half),
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		d.renderTrendPanel(half),
		d.renderCategoryPanel(contentWidth-half),
	)
	bottom := d.renderDuePanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	s := d.summary
	rows := []string{
		titleStyle.Render("Tasks"),
		fmt.Sprintf("  Total       %s", highlightStyle.Render(fmt.Sprint(s.Total))),
		fmt.Sprintf("  Completed   %s", successStyle.Render(fmt.Sprint(s.Completed))),
		fmt.Sprintf("  Pending     %s", warningStyle.Render(fmt.Sprint(s.Pending))),
		fmt.Sprintf("  High prio   %s", errorStyle.Render(fmt.Sprint(s.HighPriorityPending))),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderLevelPanel(w int) string {
	lp := d.progress
	title := titleStyle.Render(fmt.Sprintf("Level %d", lp.Level))
	if d.user.Name != "" {
		title += mutedStyle.Render("  " + d.user.Name)
	}
	bar := progressBar(lp.Fraction, max(w-12, 10))
	rows := []string{
		title,
		fmt.Sprintf("  %s XP  %s", highlightStyle.Render(fmt.Sprint(lp.XP)), mutedStyle.Render(fmt.Sprintf("next level at %d", lp.NextXP))),
		"  " + bar,
		fmt.Sprintf("  Streak %s  Achievements %s",
			accentStyle.Render(fmt.Sprint(d.user.StreakDays)),
			highlightStyle.Render(fmt.Sprint(len(d.user.Achievements)))),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderTrendPanel(w int) string {
	title := titleStyle.Render("Last 7 days") + mutedStyle.Render("  completed, by creation day")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", d.chart.View()),
	)
}

func (d dashboardModel) renderCategoryPanel(w int) string {
	title := titleStyle.Render("Categories")
	if len(d.summary.Categories) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No tasks yet")),
		)
	}

	top := 0
	for _, c := range d.summary.Categories {
		top = max(top, c.Count)
	}
	barWidth := max(w-24, 4)

	rows := []string{title}
	for _, c := range d.summary.Categories {
		frac := float64(c.Count) / float64(top)
		rows = append(rows, fmt.Sprintf("  %-10s %s %d", c.Category, progressBar(frac, barWidth), c.Count))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderDuePanel(w int) string {
	s := d.summary
	var rows []string

	section := func(name string, style lipgloss.Style, tasks []model.Task) {
		rows = append(rows, style.Render(fmt.Sprintf("%s (%d)", name, len(tasks))))
		for i, t := range tasks {
			if i == 5 {
				rows = append(rows, mutedStyle.Render(fmt.Sprintf("    … %d more", len(tasks)-5)))
				break
			}
			rows = append(rows, fmt.Sprintf("  %s %s %s",
				priorityStyle(t.Priority).Render("●"),
				truncate(t.Title, w-20),
				mutedStyle.Render(formatDue(t.DueDate))))
		}
	}

	section("Overdue", errorStyle, s.Overdue)
	section("Due today", warningStyle, s.DueToday)
	section(fmt.Sprintf("Next %d days", d.horizon), highlightStyle, s.Upcoming)

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
