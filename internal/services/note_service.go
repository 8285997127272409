package services

import (
	"context"
	"errors"
	"strings"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

// NoteInput carries the writable daily-note fields.
type NoteInput struct {
	CategoryID *int64
	Title      string
	Content    string
	NoteDate   models.Date
}

type NoteService interface {
	Create(ctx context.Context, userID int64, input NoteInput) (*models.DailyNote, error)
	GetByID(ctx context.Context, id, userID int64) (*models.DailyNote, error)
	GetAll(ctx context.Context, userID int64) ([]models.DailyNote, error)
	GetByDate(ctx context.Context, userID int64, day models.Date) (*models.DailyNote, error)
	Update(ctx context.Context, id, userID int64, input NoteInput) (*models.DailyNote, error)
	Delete(ctx context.Context, id, userID int64) error
}

type noteService struct {
	repo repositories.NoteRepository
}

func NewNoteService(repo repositories.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func validateNoteInput(input NoteInput) *models.ValidationError {
	ve := models.NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		ve.Add("title", "Note title is required.")
	}
	if (input.NoteDate == models.Date{}) {
		ve.Add("note_date", "Note date is required.")
	}
	return ve
}

// Create enforces the one-note-per-day rule: a second note for the same
// (user, date) pair is a validation error, backed by a unique index.
func (s *noteService) Create(ctx context.Context, userID int64, input NoteInput) (*models.DailyNote, error) {
	ve := validateNoteInput(input)
	if !ve.HasErrors() {
		exists, err := s.repo.ExistsForDate(ctx, userID, input.NoteDate)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("note_date", "A note already exists for this date.")
		}
	}
	if ve.HasErrors() {
		return nil, ve
	}

	note := &models.DailyNote{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Title:      strings.TrimSpace(input.Title),
		Content:    input.Content,
		NoteDate:   input.NoteDate,
	}
	if err := s.repo.Store(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetByID(ctx context.Context, id, userID int64) (*models.DailyNote, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *noteService) GetAll(ctx context.Context, userID int64) ([]models.DailyNote, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *noteService) GetByDate(ctx context.Context, userID int64, day models.Date) (*models.DailyNote, error) {
	return s.repo.FindByDate(ctx, userID, day)
}

func (s *noteService) Update(ctx context.Context, id, userID int64, input NoteInput) (*models.DailyNote, error) {
	ve := validateNoteInput(input)
	if ve.HasErrors() {
		return nil, ve
	}

	note, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// moving the note to another day must not collide with an existing note
	if !note.NoteDate.Equal(input.NoteDate) {
		exists, err := s.repo.ExistsForDate(ctx, userID, input.NoteDate)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("note_date", "A note already exists for this date.")
			return nil, ve
		}
	}

	note.CategoryID = input.CategoryID
	note.Title = strings.TrimSpace(input.Title)
	note.Content = input.Content
	note.NoteDate = input.NoteDate

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// IsNotFound is a small helper for callers that treat a missing note as an
// empty result rather than an error.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
