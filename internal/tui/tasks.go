package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskxp/internal/derive"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
	"github.com/sadopc/taskxp/internal/tracker"
)

// taskFields backs the huh form. Held by pointer so values survive copies
// of the model.
type taskFields struct {
	title       string
	description string
	code        string
	priority    string
	category    string
	due         string
	tags        string
}

type tasksModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	tasks   []model.Task
	filters model.Filters
	cursor  int

	searching bool
	search    textinput.Model

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit"
	fields     *taskFields
	editingID  string
}

func newTasksModel(t *tracker.Tracker) tasksModel {
	ti := textinput.New()
	ti.Placeholder = "title, description or tag"
	ti.Prompt = "/ "
	ti.CharLimit = 80

	return tasksModel{
		tracker: t,
		search:  ti,
		fields:  &taskFields{},
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = max(w-12, 10)
}

type tasksDataMsg struct {
	tasks   []model.Task
	filters model.Filters
}

func (m tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap := m.tracker.Snapshot()
		return tasksDataMsg{
			tasks:   derive.SortForDisplay(derive.VisibleTasks(snap)),
			filters: snap.Filters,
		}
	}
}

func (m tasksModel) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		m.tasks = msg.tasks
		m.filters = msg.filters
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateList(msg)
	}
	return m, nil
}

func (m tasksModel) updateList(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.New):
		return m.showNewForm()
	case key.Matches(msg, keys.Edit):
		if t, ok := m.selected(); ok {
			return m.showEditForm(t)
		}
	case key.Matches(msg, keys.Toggle):
		if t, ok := m.selected(); ok {
			return m, tea.Batch(m.toggle(t), m.refresh())
		}
	case key.Matches(msg, keys.Delete):
		if t, ok := m.selected(); ok {
			m.tracker.DeleteTask(t.ID)
			return m, tea.Batch(m.refresh(), status("Deleted "+t.Title))
		}
	case key.Matches(msg, keys.Category):
		m.tracker.SetFilteredCategory(nextCategory(m.filters.Category))
		m.cursor = 0
		return m, m.refresh()
	case key.Matches(msg, keys.Priority):
		m.tracker.SetFilteredPriority(nextPriority(m.filters.Priority))
		m.cursor = 0
		return m, m.refresh()
	case key.Matches(msg, keys.ClearFilter):
		m.tracker.ClearFilters()
		m.search.SetValue("")
		m.cursor = 0
		return m, m.refresh()
	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.SetValue(m.filters.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()
	}
	return m, nil
}

// toggle flips completion and reports the XP earned, if any.
func (m tasksModel) toggle(t model.Task) tea.Cmd {
	before := m.tracker.User()
	m.tracker.ToggleCompleted(t.ID)
	after := m.tracker.User()

	if gained := after.XP - before.XP; gained > 0 {
		text := fmt.Sprintf("+%d XP for %q", gained, t.Title)
		if after.Level > before.Level {
			text += fmt.Sprintf("  Level up! Now level %d", after.Level)
		}
		if n := recordEarned(m.tracker, progress.DefaultCatalog); n > 0 {
			text += fmt.Sprintf("  %d new achievement(s)", n)
		}
		return status(text)
	}
	return nil
}

func (m tasksModel) updateSearch(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.tracker.SetSearchQuery("")
			m.search.SetValue("")
			return m, m.refresh()
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	if data, ok := msg.(tasksDataMsg); ok {
		m.tasks = data.tasks
		m.filters = data.filters
		m.cursor = min(m.cursor, max(0, len(m.tasks)-1))
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.tracker.SetSearchQuery(m.search.Value())
		m.cursor = 0
		return m, tea.Batch(cmd, m.refresh())
	}
	return m, cmd
}

func (m tasksModel) buildForm() *huh.Form {
	priorityOptions := make([]huh.Option[string], len(model.Priorities))
	for i, p := range model.Priorities {
		priorityOptions[i] = huh.NewOption(string(p), string(p))
	}
	categoryOptions := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		categoryOptions[i] = huh.NewOption(string(c), string(c))
	}

	f := m.fields
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&f.title),
			huh.NewText().Title("Description").Lines(3).Value(&f.description),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions...).Value(&f.priority),
			huh.NewSelect[string]().Title("Category").Options(categoryOptions...).Value(&f.category),
		),
		huh.NewGroup(
			huh.NewInput().Title("Due date (YYYY-MM-DD, blank for none)").Value(&f.due).Validate(validateDue),
			huh.NewInput().Title("Tags (comma-separated)").Value(&f.tags),
			huh.NewText().Title("Code snippet").Lines(4).Value(&f.code),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m tasksModel) showNewForm() (tasksModel, tea.Cmd) {
	*m.fields = taskFields{
		priority: string(model.PriorityMedium),
		category: string(model.CategoryWork),
	}
	if m.filters.Category != nil {
		m.fields.category = string(*m.filters.Category)
	}
	m.formType = "new"
	m.editingID = ""
	m.form = m.buildForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) showEditForm(t model.Task) (tasksModel, tea.Cmd) {
	*m.fields = taskFields{
		title:       t.Title,
		description: t.Description,
		code:        t.CodeSnippet,
		priority:    string(t.Priority),
		category:    string(t.Category),
		tags:        strings.Join(t.Tags, ", "),
	}
	if t.DueDate != nil {
		m.fields.due = t.DueDate.Format(dateLayout)
	}
	m.formType = "edit"
	m.editingID = t.ID
	m.form = m.buildForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		switch m.formType {
		case "new":
			task := m.tracker.AddTask(m.fields.input())
			return m, tea.Batch(m.refresh(), status(fmt.Sprintf("Added %q (+%d XP when done)", task.Title, progress.XPForPriority(task.Priority))))
		case "edit":
			m.tracker.UpdateTask(m.editingID, m.fields.update())
			return m, m.refresh()
		}
	}

	return m, cmd
}

func (f *taskFields) input() model.TaskInput {
	due, _ := parseDue(f.due)
	return model.TaskInput{
		Title:       strings.TrimSpace(f.title),
		Description: f.description,
		CodeSnippet: f.code,
		Priority:    model.Priority(f.priority),
		Category:    model.Category(f.category),
		DueDate:     due,
		Tags:        model.ParseTags(f.tags),
	}
}

func (f *taskFields) update() model.TaskUpdate {
	in := f.input()
	u := model.TaskUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		CodeSnippet: &in.CodeSnippet,
		Priority:    &in.Priority,
		Category:    &in.Category,
		Tags:        in.Tags,
	}
	if in.DueDate == nil {
		u.ClearDueDate = true
	} else {
		u.DueDate = in.DueDate
	}
	return u
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func (m tasksModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Task")
		if m.formType == "edit" {
			title = titleStyle.Render("Edit Task")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Tasks")+"  "+m.renderFilters())
	if m.searching {
		rows = append(rows, m.search.View())
	}
	rows = append(rows, "")

	if len(m.tasks) == 0 {
		hint := "No tasks yet. Press n to create one."
		if m.filters.Active() {
			hint = "No tasks match the current filters. Press r to reset."
		}
		rows = append(rows, mutedStyle.Render(hint))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	// Show a window of the list around the cursor.
	visible := max(m.height-10, 3)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.tasks))

	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(i, w))
	}
	if end < len(m.tasks) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(m.tasks)-end)))
	}

	if t, ok := m.selected(); ok && t.Description != "" {
		rows = append(rows, "", mutedStyle.Render("  "+truncate(t.Description, w-8)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: edit  space: done  d: delete  /: search  c/p: filter  r: reset"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m tasksModel) renderRow(i, w int) string {
	t := m.tasks[i]
	cursor := "  "
	style := normalItemStyle
	if i == m.cursor {
		cursor = "> "
		style = selectedItemStyle
	}
	check := "[ ]"
	if t.Completed {
		check = successStyle.Render("[✓]")
		if i != m.cursor {
			style = doneItemStyle
		}
	}

	title := style.Render(truncate(t.Title, max(w/2, 10)))
	meta := []string{
		priorityStyle(t.Priority).Render(string(t.Priority)),
		mutedStyle.Render(string(t.Category)),
	}
	if due := formatDue(t.DueDate); due != "" {
		meta = append(meta, highlightStyle.Render(due))
	}
	if tags := formatTags(t.Tags); tags != "" {
		meta = append(meta, mutedStyle.Render(tags))
	}
	if t.GitHubLink != nil {
		meta = append(meta, accentStyle.Render("⎇ "+t.GitHubLink.RepoName))
	}
	return fmt.Sprintf("%s%s %s  %s", cursor, check, title, strings.Join(meta, " "))
}

func (m tasksModel) renderFilters() string {
	var parts []string
	if m.filters.Category != nil {
		parts = append(parts, "category:"+string(*m.filters.Category))
	}
	if m.filters.Priority != nil {
		parts = append(parts, "priority:"+string(*m.filters.Priority))
	}
	if m.filters.Search != "" && !m.searching {
		parts = append(parts, fmt.Sprintf("search:%q", m.filters.Search))
	}
	if len(parts) == 0 {
		return mutedStyle.Render(fmt.Sprintf("%d shown", len(m.tasks)))
	}
	return highlightStyle.Render(strings.Join(parts, "  ")) + mutedStyle.Render(fmt.Sprintf("  %d shown", len(m.tasks)))
}
