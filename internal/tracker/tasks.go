package tracker

import (
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
)

// AddTask appends a new incomplete task and returns it. The title is not
// validated.
func (t *Tracker) AddTask(in model.TaskInput) model.Task {
	var created model.Task
	t.mutate(func(s *model.Snapshot) bool {
		task := model.Task{
			ID:          t.newID(),
			Title:       in.Title,
			Description: in.Description,
			CodeSnippet: in.CodeSnippet,
			Priority:    in.Priority,
			Category:    in.Category,
			CreatedAt:   t.clock.Now(),
			Tags:        model.NormalizeTags(in.Tags),
		}
		if in.DueDate != nil {
			d := *in.DueDate
			task.DueDate = &d
		}
		if in.GitHubLink != nil {
			l := *in.GitHubLink
			task.GitHubLink = &l
		}
		s.Tasks = append(s.Tasks, task)
		created = task.Clone()
		return true
	})
	return created
}

func (t *Tracker) DeleteTask(id string) {
	t.mutate(func(s *model.Snapshot) bool {
		i := t.indexOf(id)
		if i < 0 {
			return false
		}
		s.Tasks = append(s.Tasks[:i:i], s.Tasks[i+1:]...)
		return true
	})
}

// ToggleCompleted flips the completed flag. Completing a task awards XP,
// the completion count and the streak in the same step; un-completing it
// leaves the user's stats alone.
func (t *Tracker) ToggleCompleted(id string) {
	t.mutate(func(s *model.Snapshot) bool {
		i := t.indexOf(id)
		if i < 0 {
			return false
		}
		task := &s.Tasks[i]
		task.Completed = !task.Completed
		if task.Completed {
			progress.AwardCompletion(&s.User, task.Priority)
		}
		return true
	})
}

// UpdateTask merges u into the task. ID and CreatedAt cannot change.
func (t *Tracker) UpdateTask(id string, u model.TaskUpdate) {
	t.mutate(func(s *model.Snapshot) bool {
		i := t.indexOf(id)
		if i < 0 {
			return false
		}
		u.Apply(&s.Tasks[i])
		return true
	})
}

func (t *Tracker) SetFilteredCategory(c *model.Category) {
	t.mutate(func(s *model.Snapshot) bool {
		s.Category = clonePtr(c)
		return true
	})
}

func (t *Tracker) SetFilteredPriority(p *model.Priority) {
	t.mutate(func(s *model.Snapshot) bool {
		s.Priority = clonePtr(p)
		return true
	})
}

func (t *Tracker) SetSearchQuery(q string) {
	t.mutate(func(s *model.Snapshot) bool {
		s.Search = q
		return true
	})
}

func (t *Tracker) ClearFilters() {
	t.mutate(func(s *model.Snapshot) bool {
		s.Filters = model.Filters{}
		return true
	})
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
