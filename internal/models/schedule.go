package models

import (
	"fmt"
	"time"
)

// RecurrenceType values are stored as entered; the application never expands
// them into future occurrences.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// IsValidRecurrenceType reports whether rt is one of the known types.
func IsValidRecurrenceType(rt string) bool {
	switch rt {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Schedule is a calendar entry with a required start and optional end.
type Schedule struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceType *string    `json:"recurrence_type,omitempty"`
	ReminderAt     *time.Time `json:"reminder_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Duration renders the whole-minute span between start and end. Validation
// rejects end before start, so the diff is never negative for stored rows;
// a stray negative floors at zero rather than printing nonsense.
func (s *Schedule) Duration() string {
	if s.EndTime == nil {
		return "No end time"
	}
	minutes := int(s.EndTime.Sub(s.StartTime).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}

// ScheduleView is a schedule annotated with its rendered duration and
// category.
type ScheduleView struct {
	Schedule
	Duration string    `json:"duration"`
	Category *Category `json:"category,omitempty"`
}

func NewScheduleView(s Schedule, category *Category) ScheduleView {
	return ScheduleView{
		Schedule: s,
		Duration: s.Duration(),
		Category: category,
	}
}
