package services

import (
	"context"
	"strings"
	"time"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

// ScheduleInput carries the writable schedule fields.
type ScheduleInput struct {
	CategoryID     *int64
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        *time.Time
	IsRecurring    bool
	RecurrenceType *string
	ReminderAt     *time.Time
}

type ScheduleService interface {
	Create(ctx context.Context, userID int64, input ScheduleInput) (*models.Schedule, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Schedule, error)
	GetAll(ctx context.Context, userID int64) ([]models.Schedule, error)
	Update(ctx context.Context, id, userID int64, input ScheduleInput) (*models.Schedule, error)
	Delete(ctx context.Context, id, userID int64) error
}

type scheduleService struct {
	repo repositories.ScheduleRepository
}

func NewScheduleService(repo repositories.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func validateScheduleInput(input ScheduleInput) error {
	ve := models.NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		ve.Add("title", "Schedule title is required.")
	}
	if input.StartTime.IsZero() {
		ve.Add("start_time", "Start time is required.")
	}
	// end before start is rejected rather than clamped at read time
	if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
		ve.Add("end_time", "End time must not be before the start time.")
	}
	if input.IsRecurring {
		if input.RecurrenceType == nil || !models.IsValidRecurrenceType(*input.RecurrenceType) {
			ve.Add("recurrence_type", "Recurrence type must be daily, weekly, or monthly.")
		}
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (s *scheduleService) Create(ctx context.Context, userID int64, input ScheduleInput) (*models.Schedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		UserID:         userID,
		CategoryID:     input.CategoryID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		IsRecurring:    input.IsRecurring,
		RecurrenceType: input.RecurrenceType,
		ReminderAt:     input.ReminderAt,
	}
	if !schedule.IsRecurring {
		schedule.RecurrenceType = nil
	}
	if err := s.repo.Store(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id, userID int64) (*models.Schedule, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *scheduleService) GetAll(ctx context.Context, userID int64) ([]models.Schedule, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *scheduleService) Update(ctx context.Context, id, userID int64, input ScheduleInput) (*models.Schedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}

	schedule, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	schedule.CategoryID = input.CategoryID
	schedule.Title = strings.TrimSpace(input.Title)
	schedule.Description = input.Description
	schedule.StartTime = input.StartTime
	schedule.EndTime = input.EndTime
	schedule.IsRecurring = input.IsRecurring
	schedule.RecurrenceType = input.RecurrenceType
	schedule.ReminderAt = input.ReminderAt
	if !schedule.IsRecurring {
		schedule.RecurrenceType = nil
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
