package model

import "time"

// Task statuses as stored in tasks.status.
const (
	TaskStatusPending = "PENDING"
	TaskStatusDone    = "DONE"
)

// Task represents a row in the `tasks` table.  A task optionally belongs to
// a goal; GoalID is nil for standalone tasks.
type Task struct {
	ID        uint64     // tasks.id
	UserID    uint64     // tasks.user_id
	GoalID    *uint64    // tasks.goal_id (nullable)
	Title     string     // tasks.title
	Status    string     // tasks.status
	DueDate   *time.Time // tasks.due_date (nullable)
	CreatedAt time.Time  // tasks.created_at
}
