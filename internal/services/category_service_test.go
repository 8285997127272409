package services

import (
	"context"
	"testing"

	"dayplanner/internal/models"
)

func TestCategoryColorValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(&fakeCategoryRepo{})

	tests := []struct {
		name  string
		color string
		ok    bool
	}{
		{"empty color is optional", "", true},
		{"lowercase hex", "#ff8800", true},
		{"uppercase hex", "#FF8800", true},
		{"missing hash", "ff8800", false},
		{"too short", "#fff", false},
		{"not hex", "#gggggg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, CategoryInput{Name: "work", Color: tt.color})
			if tt.ok && err != nil {
				t.Fatalf("Create: %v", err)
			}
			if !tt.ok {
				ve, isVE := models.AsValidationError(err)
				if !isVE {
					t.Fatalf("expected validation error, got %v", err)
				}
				if _, has := ve.Fields["color"]; !has {
					t.Errorf("expected color error, got %v", ve.Fields)
				}
			}
		})
	}
}

func TestCategoryNameRequired(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(&fakeCategoryRepo{})

	_, err := svc.Create(ctx, 1, CategoryInput{Name: "   "})
	ve, ok := models.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, has := ve.Fields["name"]; !has {
		t.Errorf("expected name error, got %v", ve.Fields)
	}
}
