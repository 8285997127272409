// internal/models/task.go
package models

import "time"

// TaskPriority defines the possible priorities for a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// IsValidTaskPriority reports whether p is one of the known priorities.
func IsValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single to-do item owned by one user.
type Task struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	ReminderAt  *time.Time   `json:"reminder_at,omitempty"` // stored only, nothing dispatches it
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsCompleted reports whether the task has a completion timestamp.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// IsOverdue reports whether the task is pending with a due date strictly in
// the past. Recomputed on every read, never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.IsCompleted() && t.DueDate != nil && t.DueDate.Before(now)
}

// TaskFilter defines the available parameters for listing tasks.
type TaskFilter struct {
	CategoryID *int64
	Completed  *bool
	DueOn      *Date
}

// TaskView is a task annotated with its derived attributes and category for
// responses.
type TaskView struct {
	Task
	IsCompleted bool      `json:"is_completed"`
	IsOverdue   bool      `json:"is_overdue"`
	Category    *Category `json:"category,omitempty"`
}

// NewTaskView computes the read-only attributes for one task.
func NewTaskView(t Task, category *Category, now time.Time) TaskView {
	return TaskView{
		Task:        t,
		IsCompleted: t.IsCompleted(),
		IsOverdue:   t.IsOverdue(now),
		Category:    category,
	}
}
