package models

import "time"

// DailyNote is a journal entry pinned to one calendar date. At most one note
// exists per user per date (unique index plus a service-level check).
type DailyNote struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NoteDate   Date      `json:"note_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteView is a note annotated with its category.
type NoteView struct {
	DailyNote
	Category *Category `json:"category,omitempty"`
}
