package tracker

import (
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
)

// GrantXP adds amount to the user's xp. Negative amounts are accepted;
// the level never decreases.
func (t *Tracker) GrantXP(amount int) {
	t.mutate(func(s *model.Snapshot) bool {
		progress.GrantXP(&s.User, amount)
		return true
	})
}

// UnlockAchievement records def as unlocked now. Calling it twice records
// it twice.
func (t *Tracker) UnlockAchievement(def progress.Definition) model.Achievement {
	var a model.Achievement
	t.mutate(func(s *model.Snapshot) bool {
		a = progress.Unlock(&s.User, def, t.newID(), t.clock.Now())
		return true
	})
	return a
}

func (t *Tracker) SetUserName(name string) {
	t.mutate(func(s *model.Snapshot) bool {
		if s.User.Name == name {
			return false
		}
		s.User.Name = name
		return true
	})
}
