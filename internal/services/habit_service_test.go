package services

import (
	"context"
	"errors"
	"testing"

	"dayplanner/internal/models"
)

func seedHabit(t *testing.T, repo *fakeHabitRepo, userID int64, dates models.DateSet) *models.Habit {
	t.Helper()
	habit := &models.Habit{
		UserID:          userID,
		Name:            "meditate",
		TargetFrequency: 5,
		CompletionDates: dates,
	}
	if err := repo.Store(context.Background(), habit); err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	return habit
}

func TestToggleCompletionTwiceRestoresSet(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHabitRepo{}
	svc := NewHabitService(repo)

	today := models.Today()
	original := models.DateSet{today.AddDays(-1), today.AddDays(-2)}
	habit := seedHabit(t, repo, 1, original)

	first, completed, err := svc.ToggleCompletion(ctx, habit.ID, 1, today)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !completed || !first.CompletionDates.Contains(today) {
		t.Fatal("first toggle must mark today completed")
	}

	second, completed, err := svc.ToggleCompletion(ctx, habit.ID, 1, today)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if completed || second.CompletionDates.Contains(today) {
		t.Fatal("second toggle must unmark today")
	}
	if len(second.CompletionDates) != len(original) {
		t.Fatalf("toggle pair must restore the set, got %v", second.CompletionDates)
	}
	for _, d := range original {
		if !second.CompletionDates.Contains(d) {
			t.Errorf("date %s lost after toggle pair", d)
		}
	}
}

func TestToggleCompletionRejectsFutureDate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHabitRepo{}
	svc := NewHabitService(repo)

	habit := seedHabit(t, repo, 1, models.DateSet{})

	_, _, err := svc.ToggleCompletion(ctx, habit.ID, 1, models.Today().AddDays(1))
	ve, ok := models.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, has := ve.Fields["date"]; !has {
		t.Errorf("expected a date field error, got %v", ve.Fields)
	}

	stored, _ := repo.FindByID(ctx, habit.ID, 1)
	if len(stored.CompletionDates) != 0 {
		t.Error("rejected toggle must not touch the stored set")
	}
}

func TestToggleCompletionOtherUsersHabit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHabitRepo{}
	svc := NewHabitService(repo)

	habit := seedHabit(t, repo, 1, models.DateSet{})

	_, _, err := svc.ToggleCompletion(ctx, habit.ID, 2, models.Today())
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's habit, got %v", err)
	}
}

func TestCreateHabitValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewHabitService(&fakeHabitRepo{})

	tests := []struct {
		name  string
		input HabitInput
		field string
	}{
		{"empty name", HabitInput{Name: "  ", TargetFrequency: 3}, "name"},
		{"frequency too low", HabitInput{Name: "run", TargetFrequency: 0}, "target_frequency"},
		{"frequency too high", HabitInput{Name: "run", TargetFrequency: 11}, "target_frequency"},
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

	habit, err := svc.Create(ctx, 1, HabitInput{Name: " run ", TargetFrequency: 7})
	if err != nil {
		t.Fatalf("valid input: %v", err)
	}
	if habit.Name != "run" {
		t.Errorf("name must be trimmed, got %q", habit.Name)
	}
	if habit.CompletionDates == nil {
		t.Error("new habit must start with an empty, non-nil completion set")
	}
}
