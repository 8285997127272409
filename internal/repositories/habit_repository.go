package repositories

import (
	"context"
	"database/sql"

	"dayplanner/internal/models"
)

type HabitRepository interface {
	Store(ctx context.Context, habit *models.Habit) error
	FindByID(ctx context.Context, id, userID int64) (*models.Habit, error)
	FindAll(ctx context.Context, userID int64) ([]models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) error
	UpdateCompletionDates(ctx context.Context, id, userID int64, dates models.DateSet) error
	Delete(ctx context.Context, id, userID int64) error
}

type habitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) HabitRepository {
	return &habitRepository{db: db}
}

const habitColumns = `id, user_id, category_id, name, description,
	target_frequency, completion_dates, created_at, updated_at`

func (r *habitRepository) Store(ctx context.Context, habit *models.Habit) error {
	const q = `
		INSERT INTO habits (
			user_id, category_id, name, description, target_frequency,
			completion_dates, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		habit.UserID, habit.CategoryID, habit.Name, habit.Description,
		habit.TargetFrequency, habit.CompletionDates,
	).Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt)
}

func scanHabit(scan func(dest ...interface{}) error) (models.Habit, error) {
	var h models.Habit
	err := scan(
		&h.ID, &h.UserID, &h.CategoryID, &h.Name, &h.Description,
		&h.TargetFrequency, &h.CompletionDates, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func (r *habitRepository) FindByID(ctx context.Context, id, userID int64) (*models.Habit, error) {
	q := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1 AND user_id = $2`
	h, err := scanHabit(r.db.QueryRowContext(ctx, q, id, userID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *habitRepository) FindAll(ctx context.Context, userID int64) ([]models.Habit, error) {
	q := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *habitRepository) Update(ctx context.Context, habit *models.Habit) error {
	const q = `
		UPDATE habits SET
			category_id=$1, name=$2, description=$3, target_frequency=$4, updated_at=NOW()
		WHERE id=$5 AND user_id=$6`
	res, err := r.db.ExecContext(ctx, q,
		habit.CategoryID, habit.Name, habit.Description, habit.TargetFrequency,
		habit.ID, habit.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateCompletionDates replaces the whole completion set in a single
// statement; row-level atomicity in Postgres is the only concurrency
// safeguard the toggle relies on.
func (r *habitRepository) UpdateCompletionDates(ctx context.Context, id, userID int64, dates models.DateSet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE habits SET completion_dates=$1, updated_at=NOW() WHERE id=$2 AND user_id=$3`,
		dates, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *habitRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
