package tracker

import (
	"log/slog"

	"github.com/sadopc/taskxp/internal/model"
)

type TaskSaver interface {
	SaveTasks(model.Snapshot) error
}

type ThemeSaver interface {
	SaveTheme(model.ThemeState) error
}

// Autosave writes every new snapshot to s. Write failures are logged and
// otherwise ignored.
func Autosave(t *Tracker, s TaskSaver, log *slog.Logger) (stop func()) {
	return t.Subscribe(func(snap model.Snapshot) {
		if err := s.SaveTasks(snap); err != nil {
			log.Warn("save task store", "error", err)
		}
	})
}

func AutosaveTheme(t *Theme, s ThemeSaver, log *slog.Logger) {
	t.Subscribe(func(state model.ThemeState) {
		if err := s.SaveTheme(state); err != nil {
			log.Warn("save theme", "error", err)
		}
	})
}
