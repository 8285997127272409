// internal/models/habit.go
package models

import (
	"sort"
	"time"
)

// Target frequency bounds, per week.
const (
	MinTargetFrequency = 1
	MaxTargetFrequency = 10
)

// Habit tracks a recurring practice and the calendar dates it was completed
// on.
type Habit struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TargetFrequency int       `json:"target_frequency"`
	CompletionDates DateSet   `json:"completion_dates"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsCompletedOn reports whether the habit was completed on the given day.
func (h *Habit) IsCompletedOn(day Date) bool {
	return h.CompletionDates.Contains(day)
}

// StreakOn counts consecutive completed days ending at today, walking the
// completion dates most-recent-first and stopping at the first gap. If today
// itself is not completed the very first comparison misses and the streak is
// 0, regardless of how long the preceding run was.
func (h *Habit) StreakOn(today Date) int {
	dates := make([]Date, len(h.CompletionDates))
	copy(dates, h.CompletionDates)
	sort.Slice(dates, func(i, j int) bool {
		return dates[j].Before(dates[i]) // descending
	})

	streak := 0
	cursor := today
	for _, d := range dates {
		if d.Equal(cursor) {
			streak++
			cursor = cursor.AddDays(-1)
			continue
		}
		if d.Before(cursor) {
			break
		}
		// future-dated entry relative to the cursor: skip
	}
	return streak
}

// HabitView is a habit annotated with its derived attributes and category.
type HabitView struct {
	Habit
	IsCompletedToday bool      `json:"is_completed_today"`
	CurrentStreak    int       `json:"current_streak"`
	Category         *Category `json:"category,omitempty"`
}

func NewHabitView(h Habit, category *Category, today Date) HabitView {
	return HabitView{
		Habit:            h,
		IsCompletedToday: h.IsCompletedOn(today),
		CurrentStreak:    h.StreakOn(today),
		Category:         category,
	}
}
