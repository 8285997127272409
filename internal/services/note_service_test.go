package services

import (
	"context"
	"testing"
	"time"

	"dayplanner/internal/models"
)

func TestCreateNoteRejectsDuplicateDate(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&fakeNoteRepo{})

	day := models.NewDate(2025, time.March, 15)
	if _, err := svc.Create(ctx, 1, NoteInput{Title: "morning", NoteDate: day}); err != nil {
		t.Fatalf("first note: %v", err)
	}

	_, err := svc.Create(ctx, 1, NoteInput{Title: "evening", NoteDate: day})
	ve, ok := models.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, has := ve.Fields["note_date"]; !has {
		t.Errorf("expected note_date error, got %v", ve.Fields)
	}

	// same date for a different user is fine
	if _, err := svc.Create(ctx, 2, NoteInput{Title: "morning", NoteDate: day}); err != nil {
		t.Errorf("other user's note on the same date: %v", err)
	}
}

func TestUpdateNoteDateCollision(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&fakeNoteRepo{})

	day := models.NewDate(2025, time.March, 15)
	first, err := svc.Create(ctx, 1, NoteInput{Title: "a", NoteDate: day})
	if err != nil {
		t.Fatalf("first note: %v", err)
	}
	if _, err := svc.Create(ctx, 1, NoteInput{Title: "b", NoteDate: day.AddDays(1)}); err != nil {
		t.Fatalf("second note: %v", err)
	}

	// keeping the same date must not trip the uniqueness check
	if _, err := svc.Update(ctx, first.ID, 1, NoteInput{Title: "a2", NoteDate: day}); err != nil {
		t.Fatalf("same-date update: %v", err)
	}

	// moving onto an occupied date must
	_, err = svc.Update(ctx, first.ID, 1, NoteInput{Title: "a2", NoteDate: day.AddDays(1)})
	if _, ok := models.AsValidationError(err); !ok {
		t.Fatalf("expected validation error for occupied date, got %v", err)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&fakeNoteRepo{})

	_, err := svc.Create(ctx, 1, NoteInput{Title: "  "})
	ve, ok := models.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, has := ve.Fields["title"]; !has {
		t.Errorf("expected title error, got %v", ve.Fields)
	}
	if _, has := ve.Fields["note_date"]; !has {
		t.Errorf("expected note_date error, got %v", ve.Fields)
	}
}

func TestGetByDateMissingNote(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&fakeNoteRepo{})

	_, err := svc.GetByDate(ctx, 1, models.NewDate(2025, time.March, 15))
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for a day without a note, got %v", err)
	}
}
