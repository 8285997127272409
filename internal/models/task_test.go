package models

import (
	"testing"
	"time"
)

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name        string
		dueDate     *time.Time
		completedAt *time.Time
		want        bool
	}{
		{"no due date", nil, nil, false},
		{"due yesterday, pending", &yesterday, nil, true},
		{"due yesterday, completed", &yesterday, &now, false},
		{"due tomorrow, pending", &tomorrow, nil, false},
		{"due exactly now", &now, nil, false}, // strictly before, not at
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate, CompletedAt: tt.completedAt}
			if got := task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskCompletionClearsOverdue(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	task := Task{DueDate: &yesterday}
	if !task.IsOverdue(now) {
		t.Fatal("pending task due yesterday must be overdue")
	}

	task.CompletedAt = &now
	if !task.IsCompleted() {
		t.Fatal("task with completed_at must report completed")
	}
	if task.IsOverdue(now) {
		t.Error("completed task must never be overdue")
	}
}
