package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/tracker"
)

type settingsModel struct {
	tracker *tracker.Tracker
	theme   *tracker.Theme
	info    []setting
	width   int
	height  int

	user       model.User
	dark       bool
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	name *string
}

// setting is a read-only line shown under the editable preferences.
type setting struct {
	Key   string
	Value string
}

func newSettingsModel(t *tracker.Tracker, theme *tracker.Theme, info []setting) settingsModel {
	name := ""
	return settingsModel{
		tracker: t,
		theme:   theme,
		info:    info,
		dark:    theme.DarkMode(),
		name:    &name,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	user model.User
	dark bool
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{user: s.tracker.User(), dark: s.theme.DarkMode()}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.user = msg.user
		s.dark = msg.dark
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Theme):
			s.theme.ToggleDarkMode()
			s.dark = s.theme.DarkMode()
			dark := s.dark
			return s, func() tea.Msg { return themeChangedMsg{dark: dark} }
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.name = s.user.Name

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Display name").Value(s.name).Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}),
		).Title("Profile"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		s.tracker.SetUserName(strings.TrimSpace(*s.name))
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit your name, t to switch theme")

	mode := "light"
	if s.dark {
		mode = "dark"
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, settingRow("name", s.user.Name))
	rows = append(rows, settingRow("theme", mode))
	rows = append(rows, settingRow("user id", s.user.ID))
	rows = append(rows, "")
	for _, st := range s.info {
		rows = append(rows, settingRow(st.Key, st.Value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func settingRow(k, v string) string {
	label := lipgloss.NewStyle().Width(24).Render(k)
	return fmt.Sprintf("  %s %s", label, highlightStyle.Render(v))
}
