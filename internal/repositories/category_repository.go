package repositories

import (
	"context"
	"database/sql"

	"dayplanner/internal/models"
)

type CategoryRepository interface {
	Store(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id, userID int64) (*models.Category, error)
	FindAll(ctx context.Context, userID int64) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id, userID int64) error
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Store(ctx context.Context, category *models.Category) error {
	const q = `
		INSERT INTO categories (user_id, name, color, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		category.UserID, category.Name, category.Color, category.Icon,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) FindByID(ctx context.Context, id, userID int64) (*models.Category, error) {
	const q = `
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM categories WHERE id = $1 AND user_id = $2`
	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, userID int64) ([]models.Category, error) {
	const q = `
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM categories WHERE user_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	const q = `
		UPDATE categories SET name=$1, color=$2, icon=$3, updated_at=NOW()
		WHERE id=$4 AND user_id=$5`
	res, err := r.db.ExecContext(ctx, q,
		category.Name, category.Color, category.Icon, category.ID, category.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes the category; the schema nulls category_id on dependents
// (ON DELETE SET NULL), nothing cascades.
func (r *categoryRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow maps a zero-row write to ErrNotFound so non-owned rows are
// indistinguishable from missing ones.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
