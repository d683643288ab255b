package model

import "time"

// Goal statuses as stored in goals.status.
const (
	GoalStatusActive    = "ACTIVE"
	GoalStatusCompleted = "COMPLETED"
	GoalStatusArchived  = "ARCHIVED"
)

// Goal represents a row in the `goals` table: a user-defined objective that
// tasks can be attached to.
type Goal struct {
	ID          uint64     // goals.id
	UserID      uint64     // goals.user_id
	Title       string     // goals.title
	Description string     // goals.description
	TargetDate  *time.Time // goals.target_date (nullable)
	Status      string     // goals.status
	CreatedAt   time.Time  // goals.created_at
}
