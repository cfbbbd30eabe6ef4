package model

import (
	"slices"
	"time"
)

type User struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	XP             int           `json:"xp"`
	CompletedTasks int           `json:"completedTasks"`
	StreakDays     int           `json:"streakDays"`
	Level          int           `json:"level"`
	Achievements   []Achievement `json:"achievements"`
}

// DefaultUser is the progress record created on first start.
func DefaultUser(id, name string) User {
	return User{
		ID:           id,
		Name:         name,
		Level:        1,
		Achievements: []Achievement{},
	}
}

func (u User) Clone() User {
	c := u
	c.Achievements = slices.Clone(u.Achievements)
	if c.Achievements == nil {
		c.Achievements = []Achievement{}
	}
	return c
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Icon        string    `json:"icon"`
}
