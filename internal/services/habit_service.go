// internal/services/habit_service.go
package services

import (
	"context"
	"strings"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

// HabitInput carries the writable habit fields.
type HabitInput struct {
	CategoryID      *int64
	Name            string
	Description     string
	TargetFrequency int
}

// HabitService owns the habit completion ledger: the per-habit set of
// calendar dates a habit was completed on, and the toggle that flips today's
// membership.
type HabitService interface {
	Create(ctx context.Context, userID int64, input HabitInput) (*models.Habit, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Habit, error)
	GetAll(ctx context.Context, userID int64) ([]models.Habit, error)
	Update(ctx context.Context, id, userID int64, input HabitInput) (*models.Habit, error)
	Delete(ctx context.Context, id, userID int64) error

	// ToggleCompletion flips the habit's completion for the given day and
	// persists the updated set. The returned bool is the state after the
	// toggle: true when the day is now marked completed.
	ToggleCompletion(ctx context.Context, id, userID int64, today models.Date) (*models.Habit, bool, error)
}

type habitService struct {
	repo repositories.HabitRepository
}

func NewHabitService(repo repositories.HabitRepository) HabitService {
	return &habitService{repo: repo}
}

func validateHabitInput(input HabitInput) error {
	ve := models.NewValidationError()
	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "Habit name is required.")
	}
	if input.TargetFrequency < models.MinTargetFrequency || input.TargetFrequency > models.MaxTargetFrequency {
		ve.Add("target_frequency", "Target frequency must be between 1 and 10.")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (s *habitService) Create(ctx context.Context, userID int64, input HabitInput) (*models.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	habit := &models.Habit{
		UserID:          userID,
		CategoryID:      input.CategoryID,
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		TargetFrequency: input.TargetFrequency,
		CompletionDates: models.DateSet{},
	}
	if err := s.repo.Store(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) GetByID(ctx context.Context, id, userID int64) (*models.Habit, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *habitService) GetAll(ctx context.Context, userID int64) ([]models.Habit, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *habitService) Update(ctx context.Context, id, userID int64, input HabitInput) (*models.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	habit.CategoryID = input.CategoryID
	habit.Name = strings.TrimSpace(input.Name)
	habit.Description = input.Description
	habit.TargetFrequency = input.TargetFrequency

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *habitService) ToggleCompletion(ctx context.Context, id, userID int64, today models.Date) (*models.Habit, bool, error) {
	// handlers pass the server's current date; a future date can only come
	// from a misbehaving caller and never enters the ledger
	if today.After(models.Today()) {
		ve := models.NewValidationError()
		ve.Add("date", "Completions cannot be recorded for a future date.")
		return nil, false, ve
	}

	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, false, err
	}

	completed := !habit.CompletionDates.Contains(today)
	if completed {
		habit.CompletionDates = habit.CompletionDates.Add(today)
	} else {
		habit.CompletionDates = habit.CompletionDates.Remove(today)
	}

	if err := s.repo.UpdateCompletionDates(ctx, id, userID, habit.CompletionDates); err != nil {
		return nil, false, err
	}
	return habit, completed, nil
}
