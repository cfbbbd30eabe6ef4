// Package progress holds the rules that move a user's XP, level, streak
// and achievement list. Callers own the locking.
package progress

import (
	"math"
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

// XPForPriority is the fixed reward for completing a task of tier p.
func XPForPriority(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return 30
	case model.PriorityMedium:
		return 20
	default:
		return 10
	}
}

// LevelFor derives a level from xp: floor(sqrt(xp)/10) + 1.
func LevelFor(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp))/10)) + 1
}

// XPForLevel is the smallest xp that reaches level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := 10 * (level - 1)
	return n * n
}

// AwardCompletion applies the side effects of a task moving to completed.
// The streak counts completions, not calendar days.
func AwardCompletion(u *model.User, p model.Priority) {
	GrantXP(u, XPForPriority(p))
	u.CompletedTasks++
	u.StreakDays++
}

// GrantXP adds amount (which may be negative) and raises the level if the
// new total reaches a higher one. Level never goes down.
func GrantXP(u *model.User, amount int) {
	u.XP += amount
	if l := LevelFor(u.XP); l > u.Level {
		u.Level = l
	}
}

// Reconcile repairs a user record read from storage so that level is at
// least what xp implies.
func Reconcile(u *model.User) {
	if u.Level < 1 {
		u.Level = 1
	}
	if l := LevelFor(u.XP); l > u.Level {
		u.Level = l
	}
	if u.Achievements == nil {
		u.Achievements = []model.Achievement{}
	}
}

// Unlock appends an achievement record. It does not check for duplicates.
func Unlock(u *model.User, def Definition, id string, at time.Time) model.Achievement {
	a := model.Achievement{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		UnlockedAt:  at,
		Icon:        def.Icon,
	}
	u.Achievements = append(u.Achievements, a)
	return a
}
