package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/tracker"
)

type linkFields struct {
	taskID  string
	editing string // set when editing an existing link; pins the target task
	repo   string
	commit string
	pr     string
}

// githubModel lists tasks carrying repository metadata and attaches or
// removes it. Nothing here talks to GitHub.
type githubModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	linked []model.Task
	all    []model.Task
	active int
	cursor int

	formActive bool
	form       *huh.Form
	fields     *linkFields
}

func newGitHubModel(t *tracker.Tracker) githubModel {
	return githubModel{
		tracker: t,
		fields:  &linkFields{},
	}
}

func (g *githubModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

type githubDataMsg struct {
	linked []model.Task
	all    []model.Task
	active int
}

func (g githubModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks := g.tracker.Snapshot().Tasks
		msg := githubDataMsg{
			all:    derive.SortForDisplay(tasks),
			active: len(derive.LinkedTasks(tasks)),
		}
		for _, t := range msg.all {
			if t.GitHubLink != nil {
				msg.linked = append(msg.linked, t)
			}
		}
		return msg
	}
}

func (g githubModel) update(msg tea.Msg) (githubModel, tea.Cmd) {
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	switch msg := msg.(type) {
	case githubDataMsg:
		g.linked = msg.linked
		g.all = msg.all
		g.active = msg.active
		if g.cursor >= len(g.linked) {
			g.cursor = max(0, len(g.linked)-1)
		}
		return g, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if g.cursor > 0 {
				g.cursor--
			}
		case key.Matches(msg, keys.Down):
			if g.cursor < len(g.linked)-1 {
				g.cursor++
			}
		case key.Matches(msg, keys.New):
			if len(g.all) == 0 {
				return g, func() tea.Msg {
					return statusMsg{text: "No tasks yet. Press 2 to go to Tasks and create one.", isError: true}
				}
			}
			return g.showForm(nil)
		case key.Matches(msg, keys.Edit):
			if g.cursor < len(g.linked) {
				t := g.linked[g.cursor]
				return g.showForm(&t)
			}
		case key.Matches(msg, keys.Delete):
			if g.cursor < len(g.linked) {
				t := g.linked[g.cursor]
				g.tracker.UpdateTask(t.ID, model.TaskUpdate{ClearGitHubLink: true})
				return g, tea.Batch(g.refresh(), status("Unlinked "+t.Title))
			}
		}
	}
	return g, nil
}

func (g githubModel) showForm(existing *model.Task) (githubModel, tea.Cmd) {
	*g.fields = linkFields{}

	options := make([]huh.Option[string], len(g.all))
	for i, t := range g.all {
		options[i] = huh.NewOption(truncate(t.Title, 60), t.ID)
	}
	if existing != nil {
		g.fields.taskID = existing.ID
		g.fields.editing = existing.ID
		if l := existing.GitHubLink; l != nil {
			g.fields.repo = l.RepoName
			g.fields.commit = l.CommitID
			g.fields.pr = l.PRNumber
		}
	} else {
		g.fields.taskID = g.all[0].ID
	}

	f := g.fields
	var target huh.Field
	if existing != nil {
		target = huh.NewNote().Title("Task").Description(existing.Title)
	} else {
		target = huh.NewSelect[string]().Title("Task").Options(options...).Value(&f.taskID)
	}
	g.form = huh.NewForm(
		huh.NewGroup(
			target,
			huh.NewInput().Title("Repository (owner/repo or URL)").Value(&f.repo),
			huh.NewInput().Title("Commit").Value(&f.commit),
			huh.NewInput().Title("Pull request number").Value(&f.pr).Validate(validatePR),
		),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func validatePR(s string) error {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func (f *linkFields) link() *model.GitHubLink {
	l := &model.GitHubLink{
		RepoName: model.RepoNameFromURL(strings.TrimSpace(f.repo)),
		CommitID: strings.TrimSpace(f.commit),
		PRNumber: strings.TrimPrefix(strings.TrimSpace(f.pr), "#"),
	}
	if *l == (model.GitHubLink{}) {
		return nil
	}
	return l
}

func (g githubModel) updateForm(msg tea.Msg) (githubModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		g.form = nil
		g.save()
		return g, g.refresh()
	}

	return g, cmd
}

func (g githubModel) save() {
	id := g.fields.taskID
	if g.fields.editing != "" {
		id = g.fields.editing
	}
	if l := g.fields.link(); l != nil {
		g.tracker.UpdateTask(id, model.TaskUpdate{GitHubLink: l})
	} else {
		g.tracker.UpdateTask(id, model.TaskUpdate{ClearGitHubLink: true})
	}
}

func (g githubModel) view() string {
	w := g.width - 4

	if g.formActive && g.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Link Task"), "", g.form.View()),
		)
	}

	title := titleStyle.Render("GitHub") + mutedStyle.Render(fmt.Sprintf("  %d linked, %d with commit or PR", len(g.linked), g.active))
	if len(g.linked) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "",
			mutedStyle.Render("No linked tasks. Press n to attach a repository, commit or pull request."),
		))
	}

	rows := []string{title, ""}
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-28s %-24s %-9s %s", "Task", "Repository", "Commit", "PR")))
	for i, t := range g.linked {
		cursor := "  "
		style := normalItemStyle
		if i == g.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		l := t.GitHubLink
		pr := ""
		if l.PRNumber != "" {
			pr = "#" + l.PRNumber
		}
		activity := mutedStyle.Render("○")
		if l.HasActivity() {
			activity = successStyle.Render("●")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %-24s %-9s %s",
			cursor, activity,
			style.Render(fmt.Sprintf("%-26s", truncate(t.Title, 26))),
			truncate(l.RepoName, 24), shortCommit(l.CommitID), pr))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: link task  enter: edit  d: unlink"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
