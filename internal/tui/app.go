package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/export"
	"github.com/sadopc/taskxp/internal/tracker"
)

// Options carries startup settings the views need.
type Options struct {
	HorizonDays int
	ExportDir   string // defaults to the home directory
	DBPath      string
	LogFile     string
}

// App is the root Bubble Tea model.
type App struct {
	tracker   *tracker.Tracker
	theme     *tracker.Theme
	exportDir string
	width     int
	height    int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard    dashboardModel
	tasks        tasksModel
	calendar     calendarModel
	achievements achievementsModel
	github       githubModel
	settings     settingsModel

	help   help.Model
	status string
}

func NewApp(t *tracker.Tracker, theme *tracker.Theme, opts Options) App {
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = derive.DefaultHorizonDays
	}
	if opts.ExportDir == "" {
		opts.ExportDir, _ = os.UserHomeDir()
	}
	applyTheme(theme.DarkMode())

	h := help.New()
	h.ShowAll = false

	info := []setting{
		{Key: "upcoming window", Value: fmt.Sprintf("%d days", opts.HorizonDays)},
		{Key: "export directory", Value: opts.ExportDir},
	}
	if opts.DBPath != "" {
		info = append(info, setting{Key: "database", Value: opts.DBPath})
	}
	if opts.LogFile != "" {
		info = append(info, setting{Key: "log file", Value: opts.LogFile})
	}

	return App{
		tracker:      t,
		theme:        theme,
		exportDir:    opts.ExportDir,
		activeView:   viewDashboard,
		dashboard:    newDashboardModel(t, opts.HorizonDays),
		tasks:        newTasksModel(t),
		calendar:     newCalendarModel(t),
		achievements: newAchievementsModel(t),
		github:       newGitHubModel(t),
		settings:     newSettingsModel(t, theme, info),
		help:         h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.Init(),
		tickCmd(),
	)
}

// tickCmd refreshes date-dependent views (due today, overdue) as the
// clock moves on.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.achievements.setSize(a.width, contentHeight)
		a.github.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, a.refreshCurrentView()

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewTasks)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewCalendar)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewAchievements)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewGitHub)
		case key.Matches(msg, keys.Tab6):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		}

	case tickMsg:
		return a, tea.Batch(tickCmd(), a.refreshCurrentView())

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.status = "! " + msg.text
		}
		return a, nil

	case themeChangedMsg:
		applyTheme(msg.dark)
		if msg.dark {
			a.status = "Dark mode on"
		} else {
			a.status = "Light mode on"
		}
		return a, a.refreshCurrentView()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewAchievements:
		a.achievements, cmd = a.achievements.update(msg)
	case viewGitHub:
		a.github, cmd = a.github.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive || a.tasks.searching
	case viewGitHub:
		return a.github.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewTasks:
		return a.tasks.refresh()
	case viewCalendar:
		return a.calendar.refresh()
	case viewAchievements:
		return a.achievements.refresh()
	case viewGitHub:
		return a.github.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewTasks:
		content = a.tasks.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewAchievements:
		content = a.achievements.view()
	case viewGitHub:
		content = a.github.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("taskxp")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Level indicator in footer
	u := a.tracker.User()
	levelInfo := highlightStyle.Render(fmt.Sprintf(" Lv %d · %d XP", u.Level, u.XP))

	left := footerStyle.Render(helpView)
	right := levelInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Tasks")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		tasks := derive.SortForDisplay(a.tracker.Snapshot().Tasks)
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(a.exportDir, fmt.Sprintf("taskxp-export-%s.csv", dateStr))
			if err := export.ToCSV(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(a.exportDir, fmt.Sprintf("taskxp-export-%s.json", dateStr))
			if err := export.ToJSON(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
