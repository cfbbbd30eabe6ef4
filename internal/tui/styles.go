package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/model"
)

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	err       lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#6C63FF"),
	secondary: lipgloss.Color("#2EC4B6"),
	accent:    lipgloss.Color("#FF6B6B"),
	muted:     lipgloss.Color("#666666"),
	success:   lipgloss.Color("#2ECC71"),
	warning:   lipgloss.Color("#F39C12"),
	err:       lipgloss.Color("#E74C3C"),
	fg:        lipgloss.Color("#C0CAF5"),
	subtle:    lipgloss.Color("#414868"),
	highlight: lipgloss.Color("#7AA2F7"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#4B3FD9"),
	secondary: lipgloss.Color("#168F84"),
	accent:    lipgloss.Color("#D64545"),
	muted:     lipgloss.Color("#8A8A8A"),
	success:   lipgloss.Color("#1E8E4F"),
	warning:   lipgloss.Color("#B86E00"),
	err:       lipgloss.Color("#C0392B"),
	fg:        lipgloss.Color("#1A1B26"),
	subtle:    lipgloss.Color("#C8CCD8"),
	highlight: lipgloss.Color("#2F5DC9"),
}

// Color palette
var (
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorMuted     lipgloss.Color
	colorSubtle    lipgloss.Color
)

// Styles
var (
	// Tabs
	activeTabStyle   lipgloss.Style
	inactiveTabStyle lipgloss.Style

	// Panels
	panelStyle       lipgloss.Style
	activePanelStyle lipgloss.Style

	// Text
	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	accentStyle    lipgloss.Style
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	mutedStyle     lipgloss.Style
	highlightStyle lipgloss.Style

	// Header/footer
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style

	// List items
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
	doneItemStyle     lipgloss.Style

	// Calendar
	dayStyle         lipgloss.Style
	todayStyle       lipgloss.Style
	selectedDayStyle lipgloss.Style
	busyDayStyle     lipgloss.Style
)

func init() { applyTheme(true) }

// applyTheme rebuilds every style from the dark or light palette.
func applyTheme(dark bool) {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	colorPrimary = p.primary
	colorSecondary = p.secondary
	colorMuted = p.muted
	colorSubtle = p.subtle

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.primary).
		Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.subtle).
		Padding(1, 2)
	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.primary).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.fg)
	subtitleStyle = lipgloss.NewStyle().Foreground(p.muted)
	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	warningStyle = lipgloss.NewStyle().Foreground(p.warning)
	errorStyle = lipgloss.NewStyle().Foreground(p.err)
	mutedStyle = lipgloss.NewStyle().Foreground(p.muted)
	highlightStyle = lipgloss.NewStyle().Foreground(p.highlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(p.primary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(p.fg)
	doneItemStyle = lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true)

	dayStyle = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Foreground(p.fg)
	todayStyle = dayStyle.Foreground(p.secondary).Bold(true)
	selectedDayStyle = dayStyle.Foreground(p.primary).Bold(true).Underline(true)
	busyDayStyle = dayStyle.Foreground(p.highlight)
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return errorStyle
	case model.PriorityMedium:
		return warningStyle
	}
	return successStyle
}
