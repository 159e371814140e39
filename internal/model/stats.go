package model

// ProductivityStats summarizes a user's current week.
type ProductivityStats struct {
	TasksCompletedThisWeek int
	TasksCreatedThisWeek   int
	PendingTasks           int
	OverdueTasks           int
	ProductivityScore      int // 0-100
}
