package tracker

import (
	"sync"

	"github.com/sadopc/taskxp/internal/model"
)

// Theme holds the dark-mode preference.
type Theme struct {
	mu    sync.Mutex
	state model.ThemeState
	subs  []func(model.ThemeState)
}

func NewTheme(state model.ThemeState) *Theme {
	return &Theme{state: state}
}

func (t *Theme) DarkMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.DarkMode
}

func (t *Theme) SetDarkMode(v bool) {
	t.mu.Lock()
	t.state.DarkMode = v
	state, subs := t.state, t.subs
	t.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

func (t *Theme) ToggleDarkMode() {
	t.SetDarkMode(!t.DarkMode())
}

func (t *Theme) Subscribe(fn func(model.ThemeState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}
