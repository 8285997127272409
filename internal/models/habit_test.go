package models

import (
	"testing"
	"time"
)

func TestStreakOn(t *testing.T) {
	today := NewDate(2025, time.March, 15)

	tests := []struct {
		name  string
		dates []Date
		want  int
	}{
		{
			name:  "empty set",
			dates: nil,
			want:  0,
		},
		{
			name:  "single completion today",
			dates: []Date{today},
			want:  1,
		},
		{
			name:  "gap breaks the streak",
			dates: []Date{today, today.AddDays(-1), today.AddDays(-3)},
			want:  2,
		},
		{
			name:  "today incomplete resets to zero",
			dates: []Date{today.AddDays(-1), today.AddDays(-2), today.AddDays(-3)},
			want:  0,
		},
		{
			name:  "long unbroken run",
			dates: []Date{today, today.AddDays(-1), today.AddDays(-2), today.AddDays(-3), today.AddDays(-4)},
			want:  5,
		},
		{
			name:  "unsorted input is sorted before the walk",
			dates: []Date{today.AddDays(-2), today, today.AddDays(-1)},
			want:  3,
		},
		{
			name:  "future date is skipped without credit",
			dates: []Date{today.AddDays(1), today, today.AddDays(-1)},
			want:  2,
		},
		{
			name:  "only future dates",
			dates: []Date{today.AddDays(1), today.AddDays(2)},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Habit{CompletionDates: DateSet(tt.dates)}
			if got := h.StreakOn(today); got != tt.want {
				t.Errorf("StreakOn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsCompletedOn(t *testing.T) {
	today := NewDate(2025, time.March, 15)
	h := Habit{CompletionDates: DateSet{today.AddDays(-1), today}}

	if !h.IsCompletedOn(today) {
		t.Error("expected habit to be completed today")
	}
	if h.IsCompletedOn(today.AddDays(1)) {
		t.Error("expected habit not to be completed tomorrow")
	}
}

func TestNewHabitView(t *testing.T) {
	today := NewDate(2025, time.March, 15)
	h := Habit{
		ID:              7,
		Name:            "read",
		CompletionDates: DateSet{today, today.AddDays(-1)},
	}
	cat := &Category{ID: 3, Name: "health"}

	view := NewHabitView(h, cat, today)
	if !view.IsCompletedToday {
		t.Error("expected is_completed_today = true")
	}
	if view.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", view.CurrentStreak)
	}
	if view.Category == nil || view.Category.ID != 3 {
		t.Error("expected category annotation to be carried through")
	}
}
