package model

// Filters is the transient list filter state. A nil pointer or an empty
// search matches everything.
type Filters struct {
	Category *Category `json:"filteredCategory"`
	Priority *Priority `json:"filteredPriority"`
	Search   string    `json:"searchQuery"`
}

func (f Filters) Active() bool {
	return f.Category != nil || f.Priority != nil || f.Search != ""
}

func (f Filters) Clone() Filters {
	c := f
	if f.Category != nil {
		v := *f.Category
		c.Category = &v
	}
	if f.Priority != nil {
		v := *f.Priority
		c.Priority = &v
	}
	return c
}

// Snapshot is the full task store state at a point in time. The JSON
// layout is the persisted "task-store" record.
type Snapshot struct {
	Tasks []Task `json:"tasks"`
	User  User   `json:"user"`
	Filters
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	tasks := make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = t.Clone()
	}
	return Snapshot{
		Tasks:   tasks,
		User:    s.User.Clone(),
		Filters: s.Filters.Clone(),
	}
}

// ThemeState is the persisted "theme-store" record.
type ThemeState struct {
	DarkMode bool `json:"darkMode"`
}
