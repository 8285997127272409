package services

import (
	"context"
	"regexp"
	"strings"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name  string
	Color string
	Icon  *string
}

type CategoryService interface {
	Create(ctx context.Context, userID int64, input CategoryInput) (*models.Category, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Category, error)
	GetAll(ctx context.Context, userID int64) ([]models.Category, error)
	Update(ctx context.Context, id, userID int64, input CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id, userID int64) error
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func validateCategoryInput(input CategoryInput) error {
	ve := models.NewValidationError()
	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "Category name is required.")
	}
	if input.Color != "" && !colorPattern.MatchString(input.Color) {
		ve.Add("color", "Color must be a #RRGGBB hex value.")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (s *categoryService) Create(ctx context.Context, userID int64, input CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}
	category := &models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Color:  input.Color,
		Icon:   input.Icon,
	}
	if err := s.repo.Store(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id, userID int64) (*models.Category, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *categoryService) GetAll(ctx context.Context, userID int64) ([]models.Category, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *categoryService) Update(ctx context.Context, id, userID int64, input CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}
	category, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(input.Name)
	category.Color = input.Color
	category.Icon = input.Icon
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
