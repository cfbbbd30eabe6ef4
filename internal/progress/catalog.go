package progress

import "github.com/sadopc/taskxp/internal/model"

// Definition describes an achievement and the condition that unlocks it.
type Definition struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Condition   func(model.User) bool
}

func completedAtLeast(n int) func(model.User) bool {
	return func(u model.User) bool { return u.CompletedTasks >= n }
}

func streakAtLeast(n int) func(model.User) bool {
	return func(u model.User) bool { return u.StreakDays >= n }
}

func levelAtLeast(n int) func(model.User) bool {
	return func(u model.User) bool { return u.Level >= n }
}

var DefaultCatalog = []Definition{
	{Key: "first-task", Name: "First Step", Description: "Complete your first task", Icon: "award", Condition: completedAtLeast(1)},
	{Key: "task-master", Name: "Task Master", Description: "Complete 10 tasks", Icon: "trophy", Condition: completedAtLeast(10)},
	{Key: "productivity-guru", Name: "Productivity Guru", Description: "Complete 50 tasks", Icon: "star", Condition: completedAtLeast(50)},
	{Key: "streak-starter", Name: "Streak Starter", Description: "Maintain a 3-day streak", Icon: "award", Condition: streakAtLeast(3)},
	{Key: "consistent-coder", Name: "Consistent Coder", Description: "Maintain a 7-day streak", Icon: "trophy", Condition: streakAtLeast(7)},
	{Key: "dedication-master", Name: "Dedication Master", Description: "Maintain a 14-day streak", Icon: "star", Condition: streakAtLeast(14)},
	{Key: "level-up", Name: "Level Up", Description: "Reach level 5", Icon: "award", Condition: levelAtLeast(5)},
	{Key: "expert-developer", Name: "Expert Developer", Description: "Reach level 10", Icon: "trophy", Condition: levelAtLeast(10)},
	{Key: "coding-legend", Name: "Coding Legend", Description: "Reach level 20", Icon: "star", Condition: levelAtLeast(20)},
}
