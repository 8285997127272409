package services

import (
	"context"
	"testing"
	"time"

	"dayplanner/internal/models"
)

func TestCreateScheduleValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewScheduleService(&fakeScheduleRepo{})

	start := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	bad := "yearly"

	tests := []struct {
		name  string
		input ScheduleInput
		field string
	}{
		{"empty title", ScheduleInput{Title: " ", StartTime: start}, "title"},
		{"missing start", ScheduleInput{Title: "standup"}, "start_time"},
		{"end before start", ScheduleInput{Title: "standup", StartTime: start, EndTime: &before}, "end_time"},
		{"recurring without type", ScheduleInput{Title: "standup", StartTime: start, IsRecurring: true}, "recurrence_type"},
		{"unknown recurrence type", ScheduleInput{Title: "standup", StartTime: start, IsRecurring: true, RecurrenceType: &bad}, "recurrence_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tt.input)
			ve, ok := models.AsValidationError(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, has := ve.Fields[tt.field]; !has {
				t.Errorf("expected error on %q, got %v", tt.field, ve.Fields)
			}
		})
	}
}

func TestCreateScheduleClearsStaleRecurrence(t *testing.T) {
	ctx := context.Background()
	svc := NewScheduleService(&fakeScheduleRepo{})

	start := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	weekly := models.RecurrenceWeekly

	s, err := svc.Create(ctx, 1, ScheduleInput{
		Title:          "one-off call",
		StartTime:      start,
		IsRecurring:    false,
		RecurrenceType: &weekly,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.RecurrenceType != nil {
		t.Error("non-recurring schedule must not keep a recurrence type")
	}
}

func TestCreateScheduleEndEqualStartAllowed(t *testing.T) {
	ctx := context.Background()
	svc := NewScheduleService(&fakeScheduleRepo{})

	start := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	end := start

	s, err := svc.Create(ctx, 1, ScheduleInput{Title: "checkpoint", StartTime: start, EndTime: &end})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Duration() != "0 minutes" {
		t.Errorf("Duration() = %q, want %q", s.Duration(), "0 minutes")
	}
}
