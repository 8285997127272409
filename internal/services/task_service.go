// internal/services/task_service.go
package services

import (
	"context"
	"strings"
	"time"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

// TaskInput carries the writable task fields.
type TaskInput struct {
	CategoryID  *int64
	Title       string
	Description string
	Priority    models.TaskPriority
	DueDate     *time.Time
	ReminderAt  *time.Time
}

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	Create(ctx context.Context, userID int64, input TaskInput, now time.Time) (*models.Task, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Task, error)
	GetAll(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, id, userID int64, input TaskInput) (*models.Task, error)
	ToggleComplete(ctx context.Context, id, userID int64, now time.Time) (*models.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}

type taskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func validateTaskInput(input TaskInput) *models.ValidationError {
	ve := models.NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		ve.Add("title", "Task title is required.")
	}
	if !models.IsValidTaskPriority(input.Priority) {
		ve.Add("priority", "Priority must be low, medium, or high.")
	}
	return ve
}

func (s *taskService) Create(ctx context.Context, userID int64, input TaskInput, now time.Time) (*models.Task, error) {
	ve := validateTaskInput(input)
	// creation-time rules: no past due date, reminder strictly in the future
	if input.DueDate != nil && models.DateOf(*input.DueDate).Before(models.DateOf(now)) {
		ve.Add("due_date", "Due date cannot be in the past.")
	}
	if input.ReminderAt != nil && !input.ReminderAt.After(now) {
		ve.Add("reminder_at", "Reminder time must be in the future.")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	task := &models.Task{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		ReminderAt:  input.ReminderAt,
	}
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *taskService) GetAll(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	return s.repo.FindAll(ctx, userID, filter)
}

func (s *taskService) Update(ctx context.Context, id, userID int64, input TaskInput) (*models.Task, error) {
	if ve := validateTaskInput(input); ve.HasErrors() {
		return nil, ve
	}

	task, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.CategoryID = input.CategoryID
	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Priority = input.Priority
	task.DueDate = input.DueDate
	task.ReminderAt = input.ReminderAt

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleComplete sets the completion timestamp to now, or clears it if the
// task is already completed.
func (s *taskService) ToggleComplete(ctx context.Context, id, userID int64, now time.Time) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if task.IsCompleted() {
		task.CompletedAt = nil
	} else {
		task.CompletedAt = &now
	}
	if err := s.repo.UpdateCompletedAt(ctx, id, userID, task.CompletedAt); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
