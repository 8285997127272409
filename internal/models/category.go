package models

import "time"

// Category is a user-defined label; tasks, schedules, habits and notes may
// reference at most one. Deleting a category nulls the reference on
// dependents, it never cascades.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
