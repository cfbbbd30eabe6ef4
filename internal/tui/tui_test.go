package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/tracker"
)

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	return tracker.New(tracker.Empty("Tester"))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func addTask(tr *tracker.Tracker, title string, p model.Priority, c model.Category) model.Task {
	return tr.AddTask(model.TaskInput{Title: title, Priority: p, Category: c})
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDue(t *testing.T) {
	if formatDue(nil) != "" {
		t.Fatal("nil due date should format empty")
	}
	d := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)
	if got := formatDue(&d); got != "Jun 3" {
		t.Fatalf("formatDue = %q, want Jun 3", got)
	}
}

func TestFormatTags(t *testing.T) {
	if formatTags(nil) != "" {
		t.Fatal("no tags should format empty")
	}
	if got := formatTags([]string{"go", "tui"}); got != "#go #tui" {
		t.Fatalf("formatTags = %q", got)
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Fatalf("shortCommit = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("short ids should pass through, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"héllo wörld", 4, "hél…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestParseDue(t *testing.T) {
	d, err := parseDue("  ")
	if err != nil || d != nil {
		t.Fatalf("blank should mean no date, got %v %v", d, err)
	}

	d, err = parseDue("2024-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 15 {
		t.Fatalf("parsed %v", d)
	}

	if validateDue("15/06/2024") == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestNextCategoryCycles(t *testing.T) {
	var cur *model.Category
	seen := 0
	for {
		cur = nextCategory(cur)
		if cur == nil {
			break
		}
		if *cur != model.Categories[seen] {
			t.Fatalf("step %d = %q, want %q", seen, *cur, model.Categories[seen])
		}
		seen++
	}
	if seen != len(model.Categories) {
		t.Fatalf("cycled through %d categories, want %d", seen, len(model.Categories))
	}
}

func TestNextPriorityCycles(t *testing.T) {
	p := nextPriority(nil)
	if p == nil || *p != model.PriorityHigh {
		t.Fatal("first priority should be high")
	}
	p = nextPriority(nextPriority(p))
	if *p != model.PriorityLow {
		t.Fatalf("third priority = %q, want low", *p)
	}
	if nextPriority(p) != nil {
		t.Fatal("cycle should end with no filter")
	}
}

func TestShiftMonthClampsDay(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	if got := shiftMonth(jan31, 1); got.Month() != time.February || got.Day() != 29 {
		t.Fatalf("Jan 31 + 1 month = %v, want Feb 29", got)
	}
	if got := shiftMonth(jan31, -1); got.Year() != 2023 || got.Month() != time.December || got.Day() != 31 {
		t.Fatalf("Jan 31 - 1 month = %v, want Dec 31 2023", got)
	}
}

func TestProgressBarWidth(t *testing.T) {
	bar := progressBar(0.5, 10)
	if strings.Count(bar, "█") != 5 || strings.Count(bar, "░") != 5 {
		t.Fatalf("unexpected bar %q", bar)
	}
	if progressBar(0.5, 0) != "" {
		t.Fatal("zero width bar should be empty")
	}
	if strings.Count(progressBar(3, 4), "█") != 4 {
		t.Fatal("fraction above 1 should clamp")
	}
}

// ============================================================
// View states
// ============================================================

func TestViewNames(t *testing.T) {
	expected := []string{"Dashboard", "Tasks", "Calendar", "Achievements", "GitHub", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewDashboard != 0 || viewTasks != 1 || viewCalendar != 2 || viewAchievements != 3 || viewGitHub != 4 || viewSettings != 5 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardLoadData(t *testing.T) {
	tr := newTestTracker(t)
	due := time.Now().Add(-time.Hour)
	tr.AddTask(model.TaskInput{Title: "late", Priority: model.PriorityHigh, Category: model.CategoryWork, DueDate: &due})
	addTask(tr, "other", model.PriorityLow, model.CategoryStudy)

	d := newDashboardModel(tr, 7)
	d.setSize(120, 40)
	d, _ = d.update(d.loadData()())

	if d.summary.Total != 2 || d.summary.HighPriorityPending != 1 {
		t.Fatalf("unexpected summary %+v", d.summary)
	}
	if len(d.summary.Overdue) != 1 {
		t.Fatalf("expected 1 overdue task, got %d", len(d.summary.Overdue))
	}
	if len(d.summary.Trend) != 7 {
		t.Fatalf("trend should have 7 days, got %d", len(d.summary.Trend))
	}
	if d.progress.Level != 1 {
		t.Fatalf("level = %d, want 1", d.progress.Level)
	}

	out := d.view()
	if !strings.Contains(out, "Overdue") || !strings.Contains(out, "Categories") {
		t.Fatal("dashboard view missing sections")
	}
}

func TestDashboardTooSmall(t *testing.T) {
	d := newDashboardModel(newTestTracker(t), 7)
	d.setSize(10, 10)
	if d.view() != "Terminal too small" {
		t.Fatal("expected size warning")
	}
}

// ============================================================
// Tasks model
// ============================================================

func newTestTasksModel(t *testing.T, tr *tracker.Tracker) tasksModel {
	t.Helper()
	m := newTasksModel(tr)
	m.setSize(120, 40)
	m, _ = m.update(m.refresh()())
	return m
}

func TestTasksRefreshSortsForDisplay(t *testing.T) {
	tr := newTestTracker(t)
	addTask(tr, "low", model.PriorityLow, model.CategoryWork)
	addTask(tr, "high", model.PriorityHigh, model.CategoryWork)

	m := newTestTasksModel(t, tr)
	if len(m.tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(m.tasks))
	}
	if m.tasks[0].Title != "high" {
		t.Fatalf("high priority should sort first, got %q", m.tasks[0].Title)
	}
}

func TestTasksToggleAwardsXP(t *testing.T) {
	tr := newTestTracker(t)
	task := addTask(tr, "ship it", model.PriorityHigh, model.CategoryWork)
	m := newTestTasksModel(t, tr)

	m, cmd := m.update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("toggle should return a command")
	}
	got, _ := tr.Task(task.ID)
	if !got.Completed {
		t.Fatal("task should be completed")
	}
	if tr.User().XP != 30 {
		t.Fatalf("xp = %d, want 30", tr.User().XP)
	}

	// First completion unlocks "First Step".
	if n := len(tr.User().Achievements); n != 1 {
		t.Fatalf("expected 1 recorded achievement, got %d", n)
	}
}

func TestTasksToggleStatusText(t *testing.T) {
	tr := newTestTracker(t)
	task := addTask(tr, "ship it", model.PriorityMedium, model.CategoryWork)
	m := newTestTasksModel(t, tr)

	msg := m.toggle(task)()
	st, ok := msg.(statusMsg)
	if !ok {
		t.Fatalf("expected statusMsg, got %T", msg)
	}
	if !strings.Contains(st.text, "+20 XP") {
		t.Fatalf("status = %q", st.text)
	}

	// Un-completing earns nothing and reports nothing.
	if cmd := m.toggle(task); cmd != nil {
		t.Fatal("un-completing should not report XP")
	}
}

func TestTasksDelete(t *testing.T) {
	tr := newTestTracker(t)
	addTask(tr, "gone", model.PriorityLow, model.CategoryWork)
	m := newTestTasksModel(t, tr)

	m.update(keyMsg("d"))
	if n := len(tr.Snapshot().Tasks); n != 0 {
		t.Fatalf("expected no tasks, got %d", n)
	}
}

func TestTasksFilterKeys(t *testing.T) {
	tr := newTestTracker(t)
	addTask(tr, "a", model.PriorityLow, model.CategoryWork)
	addTask(tr, "b", model.PriorityHigh, model.CategoryStudy)
	m := newTestTasksModel(t, tr)

	m, _ = m.update(keyMsg("c"))
	snap := tr.Snapshot()
	if snap.Category == nil || *snap.Category != model.Categories[0] {
		t.Fatal("c should set the first category filter")
	}

	m, _ = m.update(m.refresh()())
	if len(m.tasks) != 1 || m.tasks[0].Title != "a" {
		t.Fatalf("filtered list wrong: %+v", m.tasks)
	}

	m, _ = m.update(keyMsg("p"))
	if p := tr.Snapshot().Priority; p == nil || *p != model.PriorityHigh {
		t.Fatal("p should set the high priority filter")
	}

	m, _ = m.update(m.refresh()())
	m, _ = m.update(keyMsg("r"))
	if tr.Snapshot().Filters.Active() {
		t.Fatal("r should clear all filters")
	}
}

func TestTasksSearch(t *testing.T) {
	tr := newTestTracker(t)
	addTask(tr, "Write docs", model.PriorityLow, model.CategoryWork)
	m := newTestTasksModel(t, tr)

	m, _ = m.update(keyMsg("/"))
	if !m.searching {
		t.Fatal("/ should enter search mode")
	}

	m, _ = m.update(keyMsg("d"))
	if got := tr.Snapshot().Search; got != "d" {
		t.Fatalf("search query = %q, want d", got)
	}
	if len(tr.Snapshot().Tasks) != 1 {
		t.Fatal("typing in search must not trigger the delete key")
	}

	m, _ = m.update(keyMsg("enter"))
	if m.searching {
		t.Fatal("enter should leave search mode")
	}
	if tr.Snapshot().Search != "d" {
		t.Fatal("enter should keep the query")
	}

	m, _ = m.update(keyMsg("/"))
	m, _ = m.update(keyMsg("esc"))
	if tr.Snapshot().Search != "" {
		t.Fatal("esc should clear the query")
	}
}

func TestTasksNewFormDefaults(t *testing.T) {
	tr := newTestTracker(t)
	m := newTestTasksModel(t, tr)

	m, cmd := m.update(keyMsg("n"))
	if !m.formActive || m.form == nil || cmd == nil {
		t.Fatal("n should open the form")
	}
	if m.fields.priority != "medium" || m.fields.category != "work" {
		t.Fatalf("unexpected defaults %+v", *m.fields)
	}

	m, _ = m.update(keyMsg("esc"))
	if m.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestTasksEditFormPrefill(t *testing.T) {
	tr := newTestTracker(t)
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	tr.AddTask(model.TaskInput{Title: "t", Priority: model.PriorityHigh, Category: model.CategoryDesign, DueDate: &due, Tags: []string{"a", "b"}})
	m := newTestTasksModel(t, tr)

	m, _ = m.update(keyMsg("enter"))
	if m.formType != "edit" {
		t.Fatal("enter should open the edit form")
	}
	if m.fields.due != "2024-06-15" || m.fields.tags != "a, b" || m.fields.category != "design" {
		t.Fatalf("unexpected prefill %+v", *m.fields)
	}
}

func TestTaskFieldsConversion(t *testing.T) {
	f := &taskFields{
		title:    "  Title  ",
		priority: "high",
		category: "backend",
		due:      "",
		tags:     "x, y, x",
	}
	in := f.input()
	if in.Title != "Title" || in.Priority != model.PriorityHigh || in.Category != model.CategoryBackend {
		t.Fatalf("unexpected input %+v", in)
	}
	if len(in.Tags) != 2 {
		t.Fatalf("tags should be normalized, got %v", in.Tags)
	}

	u := f.update()
	if !u.ClearDueDate {
		t.Fatal("blank due date should clear the stored one")
	}

	f.due = "2024-07-01"
	u = f.update()
	if u.ClearDueDate || u.DueDate == nil {
		t.Fatal("due date should be set")
	}
}

func TestTasksViewEmptyHints(t *testing.T) {
	tr := newTestTracker(t)
	m := newTestTasksModel(t, tr)
	if !strings.Contains(m.view(), "Press n to create one") {
		t.Fatal("expected empty hint")
	}

	addTask(tr, "a", model.PriorityLow, model.CategoryStudy)
	m, _ = m.update(keyMsg("c"))
	m, _ = m.update(m.refresh()())
	if !strings.Contains(m.view(), "Press r to reset") {
		t.Fatal("expected filter hint")
	}
}

// ============================================================
// Calendar model
// ============================================================

func TestCalendarNavigation(t *testing.T) {
	tr := newTestTracker(t)
	c := newCalendarModel(tr)
	c.setSize(120, 40)
	c.selected = time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local)
	c, _ = c.update(c.refresh()())

	if len(c.weeks) != 6 {
		t.Fatalf("June 2024 has 6 weeks, got %d", len(c.weeks))
	}

	c, _ = c.update(keyMsg("l"))
	if c.selected.Month() != time.July || c.selected.Day() != 1 {
		t.Fatalf("right should move to Jul 1, got %v", c.selected)
	}
	if len(c.weeks) != 5 {
		t.Fatalf("grid should rebuild for July, got %d weeks", len(c.weeks))
	}

	c, _ = c.update(keyMsg("k"))
	if c.selected.Day() != 24 || c.selected.Month() != time.June {
		t.Fatalf("up should move back a week, got %v", c.selected)
	}

	c, _ = c.update(keyMsg("]"))
	if c.selected.Month() != time.July || c.selected.Day() != 24 {
		t.Fatalf("] should move a month, got %v", c.selected)
	}
}

func TestCalendarShowsTasksDue(t *testing.T) {
	tr := newTestTracker(t)
	due := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)
	tr.AddTask(model.TaskInput{Title: "Release", Priority: model.PriorityHigh, Category: model.CategoryWork, DueDate: &due})

	c := newCalendarModel(tr)
	c.setSize(120, 40)
	c.selected = time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local)
	c, _ = c.update(c.refresh()())

	out := c.view()
	if !strings.Contains(out, "June 2024") || !strings.Contains(out, "Release") {
		t.Fatal("calendar should show month and tasks due on the selected day")
	}

	c.selected = c.selected.AddDate(0, 0, 1)
	if !strings.Contains(c.view(), "Nothing due") {
		t.Fatal("expected empty day text")
	}
}

// ============================================================
// Achievements model
// ============================================================

func TestRecordEarnedOnce(t *testing.T) {
	tr := newTestTracker(t)
	if n := recordEarned(tr, nil); n != 0 {
		t.Fatal("empty catalog records nothing")
	}

	task := addTask(tr, "x", model.PriorityLow, model.CategoryWork)
	tr.ToggleCompleted(task.ID)

	a := newAchievementsModel(tr)
	a.setSize(120, 40)
	a, _ = a.update(a.refresh()())
	if len(a.user.Achievements) != 1 || a.user.Achievements[0].Name != "First Step" {
		t.Fatalf("expected First Step recorded, got %+v", a.user.Achievements)
	}
	if a.unlockedCount() != 1 {
		t.Fatalf("unlocked = %d, want 1", a.unlockedCount())
	}

	// Refreshing again must not duplicate the record.
	a, _ = a.update(a.refresh()())
	if len(a.user.Achievements) != 1 {
		t.Fatalf("achievement recorded twice")
	}

	if !strings.Contains(a.view(), "History") {
		t.Fatal("view should list the history")
	}
}

func TestAchievementsRecordOnUpdate(t *testing.T) {
	tr := newTestTracker(t)
	task := addTask(tr, "x", model.PriorityLow, model.CategoryWork)
	tr.ToggleCompleted(task.ID)

	a := newAchievementsModel(tr)
	msg := a.refresh()()
	if n := len(tr.User().Achievements); n != 0 {
		t.Fatalf("refresh command recorded %d achievements, want 0", n)
	}

	a, _ = a.update(msg)
	if n := len(tr.User().Achievements); n != 1 {
		t.Fatalf("update recorded %d achievements, want 1", n)
	}
	if len(a.user.Achievements) != 1 {
		t.Fatal("view state should include the new record")
	}
}

// ============================================================
// GitHub model
// ============================================================

func TestLinkFields(t *testing.T) {
	f := &linkFields{repo: "https://github.com/sadopc/taskxp.git", pr: "#42"}
	l := f.link()
	if l == nil || l.RepoName != "sadopc/taskxp" || l.PRNumber != "42" {
		t.Fatalf("unexpected link %+v", l)
	}
	if (&linkFields{}).link() != nil {
		t.Fatal("empty fields should mean no link")
	}
}

func TestValidatePR(t *testing.T) {
	for _, ok := range []string{"", "12", "#12"} {
		if validatePR(ok) != nil {
			t.Fatalf("%q should be valid", ok)
		}
	}
	if validatePR("12a") == nil {
		t.Fatal("letters should be rejected")
	}
}

func TestGitHubListAndUnlink(t *testing.T) {
	tr := newTestTracker(t)
	tr.AddTask(model.TaskInput{Title: "with pr", GitHubLink: &model.GitHubLink{RepoName: "a/b", PRNumber: "1"}})
	tr.AddTask(model.TaskInput{Title: "repo only", GitHubLink: &model.GitHubLink{RepoName: "a/b"}})
	addTask(tr, "plain", model.PriorityLow, model.CategoryWork)

	g := newGitHubModel(tr)
	g.setSize(120, 40)
	g, _ = g.update(g.refresh()())
	if len(g.linked) != 2 || g.active != 1 || len(g.all) != 3 {
		t.Fatalf("linked=%d active=%d all=%d", len(g.linked), g.active, len(g.all))
	}

	g, _ = g.update(keyMsg("d"))
	g, _ = g.update(g.refresh()())
	if len(g.linked) != 1 {
		t.Fatalf("expected 1 linked task after unlink, got %d", len(g.linked))
	}
}

func TestGitHubEditKeepsTargetTask(t *testing.T) {
	tr := newTestTracker(t)
	linked := tr.AddTask(model.TaskInput{Title: "linked", GitHubLink: &model.GitHubLink{RepoName: "a/b"}})
	other := addTask(tr, "other", model.PriorityLow, model.CategoryWork)

	g := newGitHubModel(tr)
	g.setSize(120, 40)
	g, _ = g.update(g.refresh()())
	g, _ = g.showForm(&linked)

	g.fields.taskID = other.ID
	g.fields.commit = "abc1234"
	g.save()

	if got, _ := tr.Task(other.ID); got.GitHubLink != nil {
		t.Fatal("editing must not copy the link to another task")
	}
	got, _ := tr.Task(linked.ID)
	if got.GitHubLink == nil || got.GitHubLink.CommitID != "abc1234" || got.GitHubLink.RepoName != "a/b" {
		t.Fatalf("edited link not saved on original task: %+v", got.GitHubLink)
	}
}

func TestGitHubNewWithoutTasks(t *testing.T) {
	g := newGitHubModel(newTestTracker(t))
	g, cmd := g.update(keyMsg("n"))
	if g.formActive {
		t.Fatal("form should not open without tasks")
	}
	if st, ok := cmd().(statusMsg); !ok || !st.isError {
		t.Fatal("expected error status")
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsToggleTheme(t *testing.T) {
	t.Cleanup(func() { applyTheme(true) })
	tr := newTestTracker(t)
	theme := tracker.NewTheme(model.ThemeState{DarkMode: true})

	s := newSettingsModel(tr, theme, nil)
	s, cmd := s.update(keyMsg("t"))
	if theme.DarkMode() || s.dark {
		t.Fatal("t should switch to light mode")
	}
	msg, ok := cmd().(themeChangedMsg)
	if !ok || msg.dark {
		t.Fatal("expected themeChangedMsg for light mode")
	}
}

func TestSettingsView(t *testing.T) {
	tr := newTestTracker(t)
	theme := tracker.NewTheme(model.ThemeState{})
	s := newSettingsModel(tr, theme, []setting{{Key: "database", Value: "/tmp/x.db"}})
	s.setSize(120, 40)
	s, _ = s.update(s.refresh()())

	out := s.view()
	for _, want := range []string{"Tester", "light", "/tmp/x.db"} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings view missing %q", want)
		}
	}

	s, _ = s.update(keyMsg("enter"))
	if !s.formActive || *s.name != "Tester" {
		t.Fatal("enter should open the name form prefilled")
	}
}

// ============================================================
// App model
// ============================================================

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(newTestTracker(t), tracker.NewTheme(model.ThemeState{DarkMode: true}), Options{ExportDir: t.TempDir()})
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.dashboard.horizon != 7 {
		t.Fatalf("default horizon = %d, want 7", app.dashboard.horizon)
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	app := newTestApp(t)
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)

	next, cmd := app.Update(keyMsg("2"))
	app = next.(App)
	if app.activeView != viewTasks || cmd == nil {
		t.Fatal("2 should switch to tasks and refresh")
	}

	next, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = next.(App)
	if app.activeView != viewCalendar {
		t.Fatal("tab should advance to calendar")
	}

	app.activeView = viewSettings
	next, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(App).activeView != viewDashboard {
		t.Fatal("tab should wrap around")
	}
}

func TestAppSearchCapturesKeys(t *testing.T) {
	app := newTestApp(t)
	app.activeView = viewTasks
	app.tasks.searching = true

	if !app.isFormActive() {
		t.Fatal("search mode should capture input")
	}
	next, _ := app.Update(keyMsg("q"))
	if next.(App).activeView != viewTasks {
		t.Fatal("q should be typed into search, not handled globally")
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	// Test all views render without panic
	for v := range viewState(len(viewNames)) {
		app.activeView = v
		output := app.View()
		if output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	app.width = 160
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppRenderFooter(t *testing.T) {
	app := newTestApp(t)
	app.width = 160
	app.height = 40
	app.status = "test status"

	footer := app.renderFooter()
	if !strings.Contains(footer, "test status") {
		t.Fatal("footer should contain status message")
	}
	if !strings.Contains(footer, "Lv 1") {
		t.Fatal("footer should show the level")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp(t)
	// Width 0 means not yet sized
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessages(t *testing.T) {
	app := newTestApp(t)

	next, _ := app.Update(statusMsg{text: "boom", isError: true})
	app = next.(App)
	if app.status != "! boom" {
		t.Fatalf("status = %q", app.status)
	}

	t.Cleanup(func() { applyTheme(true) })
	next, _ = app.Update(themeChangedMsg{dark: false})
	if next.(App).status != "Light mode on" {
		t.Fatal("theme change should be reported")
	}
}

func TestAppExportPicker(t *testing.T) {
	app := newTestApp(t)

	next, _ := app.Update(keyMsg("e"))
	app = next.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}

	next, _ = app.Update(keyMsg("j"))
	app = next.(App)
	if app.exportCursor != 1 {
		t.Fatal("down should select JSON")
	}

	next, cmd := app.Update(keyMsg("enter"))
	app = next.(App)
	if app.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and export")
	}

	done, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if !strings.HasSuffix(done.path, ".json") {
		t.Fatalf("unexpected path %q", done.path)
	}
	if _, err := os.Stat(done.path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

func TestAppExportCSV(t *testing.T) {
	app := newTestApp(t)
	addTask(app.tracker, "exported", model.PriorityLow, model.CategoryWork)

	done, ok := app.doExport(0)().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	data, err := os.ReadFile(done.path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "exported") {
		t.Fatal("csv should contain the task")
	}
}

func TestAppExportBadDir(t *testing.T) {
	app := NewApp(newTestTracker(t), tracker.NewTheme(model.ThemeState{}), Options{ExportDir: "/nonexistent/dir"})
	t.Cleanup(func() { applyTheme(true) })

	st, ok := app.doExport(0)().(statusMsg)
	if !ok || !st.isError {
		t.Fatal("expected error status")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test — just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	t.Cleanup(func() { applyTheme(true) })

	for _, dark := range []bool{true, false} {
		applyTheme(dark)
		styles := []struct {
			name string
			fn   func() string
		}{
			{"activeTab", func() string { return activeTabStyle.Render("test") }},
			{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
			{"panel", func() string { return panelStyle.Render("test") }},
			{"activePanel", func() string { return activePanelStyle.Render("test") }},
			{"title", func() string { return titleStyle.Render("test") }},
			{"subtitle", func() string { return subtitleStyle.Render("test") }},
			{"accent", func() string { return accentStyle.Render("test") }},
			{"success", func() string { return successStyle.Render("test") }},
			{"warning", func() string { return warningStyle.Render("test") }},
			{"error", func() string { return errorStyle.Render("test") }},
			{"muted", func() string { return mutedStyle.Render("test") }},
			{"highlight", func() string { return highlightStyle.Render("test") }},
			{"header", func() string { return headerStyle.Render("test") }},
			{"footer", func() string { return footerStyle.Render("test") }},
			{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
			{"normalItem", func() string { return normalItemStyle.Render("test") }},
			{"doneItem", func() string { return doneItemStyle.Render("test") }},
			{"day", func() string { return dayStyle.Render("12") }},
			{"priority", func() string { return priorityStyle(model.PriorityHigh).Render("high") }},
		}

		for _, s := range styles {
			if s.fn() == "" {
				t.Fatalf("style %q rendered empty (dark=%v)", s.name, dark)
			}
		}
	}
}
