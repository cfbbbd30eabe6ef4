package derive

import (
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
)

type AchievementState struct {
	progress.Definition
	Unlocked bool
}

// AchievementStatus evaluates every catalog entry against u. The user's
// stored achievement list plays no part.
func AchievementStatus(u model.User, catalog []progress.Definition) []AchievementState {
	out := make([]AchievementState, len(catalog))
	for i, def := range catalog {
		out[i] = AchievementState{Definition: def, Unlocked: def.Condition(u)}
	}
	return out
}

// LevelProgress reports how far u is between the current level and the
// next one.
type LevelProgress struct {
	Level    int
	XP       int
	FloorXP  int
	NextXP   int
	Fraction float64
}

func Progress(u model.User) LevelProgress {
	lp := LevelProgress{
		Level:   u.Level,
		XP:      u.XP,
		FloorXP: progress.XPForLevel(u.Level),
		NextXP:  progress.XPForLevel(u.Level + 1),
	}
	if span := lp.NextXP - lp.FloorXP; span > 0 {
		lp.Fraction = float64(u.XP-lp.FloorXP) / float64(span)
	}
	lp.Fraction = min(max(lp.Fraction, 0), 1)
	return lp
}
