package model

import "time"

// DailyPlan represents a row in the `daily_plans` table.  At most one plan
// exists per user and calendar date (unique constraint).
type DailyPlan struct {
	ID        uint64    // daily_plans.id
	UserID    uint64    // daily_plans.user_id
	PlanDate  time.Time // daily_plans.plan_date
	CreatedAt time.Time // daily_plans.created_at
}

// DailyPlanTask links a task into a plan with an ordering position
// (`daily_plan_tasks` table).
type DailyPlanTask struct {
	PlanID   uint64 // daily_plan_tasks.plan_id
	TaskID   uint64 // daily_plan_tasks.task_id
	Position uint32 // daily_plan_tasks.position
}
