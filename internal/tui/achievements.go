package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
	"github.com/sadopc/taskxp/internal/tracker"
)

var achievementIcons = map[string]string{
	"award":  "🏅",
	"trophy": "🏆",
	"star":   "⭐",
}

type achievementsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	user     model.User
	states   []derive.AchievementState
	progress derive.LevelProgress
}

func newAchievementsModel(t *tracker.Tracker) achievementsModel {
	return achievementsModel{tracker: t}
}

func (a *achievementsModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

type achievementsDataMsg struct {
	user model.User
}

func (a achievementsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return achievementsDataMsg{user: a.tracker.User()}
	}
}

// recordEarned adds a history entry for every catalog achievement whose
// condition holds but which has not been recorded under its name yet.
func recordEarned(t *tracker.Tracker, catalog []progress.Definition) int {
	u := t.User()
	seen := make(map[string]bool, len(u.Achievements))
	for _, a := range u.Achievements {
		seen[a.Name] = true
	}
	n := 0
	for _, s := range derive.AchievementStatus(u, catalog) {
		if s.Unlocked && !seen[s.Name] {
			t.UnlockAchievement(s.Definition)
			n++
		}
	}
	return n
}

func (a achievementsModel) update(msg tea.Msg) (achievementsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case achievementsDataMsg:
		a.user = msg.user
		if recordEarned(a.tracker, progress.DefaultCatalog) > 0 {
			a.user = a.tracker.User()
		}
		a.states = derive.AchievementStatus(a.user, progress.DefaultCatalog)
		a.progress = derive.Progress(a.user)
	}
	return a, nil
}

func (a achievementsModel) unlockedCount() int {
	n := 0
	for _, s := range a.states {
		if s.Unlocked {
			n++
		}
	}
	return n
}

func (a achievementsModel) view() string {
	w := a.width - 4

	lp := a.progress
	rows := []string{
		titleStyle.Render("Achievements") + mutedStyle.Render(fmt.Sprintf("  %d of %d unlocked", a.unlockedCount(), len(a.states))),
		"",
		fmt.Sprintf("  Level %s  %s XP  %s",
			highlightStyle.Render(fmt.Sprint(lp.Level)),
			highlightStyle.Render(fmt.Sprint(lp.XP)),
			mutedStyle.Render(fmt.Sprintf("(%d to level %d)", max(lp.NextXP-lp.XP, 0), lp.Level+1))),
		"  " + progressBar(lp.Fraction, max(w-10, 10)),
		fmt.Sprintf("  Completed %d  Streak %d", a.user.CompletedTasks, a.user.StreakDays),
		"",
	}

	for _, s := range a.states {
		icon := achievementIcons[s.Icon]
		if icon == "" {
			icon = "•"
		}
		if s.Unlocked {
			rows = append(rows, fmt.Sprintf("  %s %s  %s", icon, successStyle.Render(s.Name), mutedStyle.Render(s.Description)))
		} else {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  🔒 %s  %s", s.Name, s.Description)))
		}
	}

	if len(a.user.Achievements) > 0 {
		rows = append(rows, "", titleStyle.Render("History"))
		for _, ach := range a.user.Achievements {
			rows = append(rows, fmt.Sprintf("  %s %s", mutedStyle.Render(ach.UnlockedAt.Local().Format("Jan 2, 2006")), ach.Name))
		}
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
