package repositories

import (
	"context"
	"database/sql"

	"dayplanner/internal/models"
)

type ScheduleRepository interface {
	Store(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id, userID int64) (*models.Schedule, error)
	FindAll(ctx context.Context, userID int64) ([]models.Schedule, error)
	FindStartingOn(ctx context.Context, userID int64, day models.Date) ([]models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id, userID int64) error
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, user_id, category_id, title, description,
	start_time, end_time, is_recurring, recurrence_type, reminder_at, created_at, updated_at`

func (r *scheduleRepository) Store(ctx context.Context, schedule *models.Schedule) error {
	const q = `
		INSERT INTO schedules (
			user_id, category_id, title, description, start_time, end_time,
			is_recurring, recurrence_type, reminder_at, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		schedule.UserID, schedule.CategoryID, schedule.Title, schedule.Description,
		schedule.StartTime, schedule.EndTime, schedule.IsRecurring,
		schedule.RecurrenceType, schedule.ReminderAt,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
}

func scanSchedule(scan func(dest ...interface{}) error) (models.Schedule, error) {
	var s models.Schedule
	err := scan(
		&s.ID, &s.UserID, &s.CategoryID, &s.Title, &s.Description,
		&s.StartTime, &s.EndTime, &s.IsRecurring, &s.RecurrenceType,
		&s.ReminderAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *scheduleRepository) FindByID(ctx context.Context, id, userID int64) (*models.Schedule, error) {
	q := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 AND user_id = $2`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, q, id, userID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepository) FindAll(ctx context.Context, userID int64) ([]models.Schedule, error) {
	q := `SELECT ` + scheduleColumns + ` FROM schedules
		WHERE user_id = $1 ORDER BY start_time ASC`
	return r.querySchedules(ctx, q, userID)
}

func (r *scheduleRepository) FindStartingOn(ctx context.Context, userID int64, day models.Date) ([]models.Schedule, error) {
	q := `SELECT ` + scheduleColumns + ` FROM schedules
		WHERE user_id = $1 AND start_time::date = $2
		ORDER BY start_time ASC`
	return r.querySchedules(ctx, q, userID, day.String())
}

func (r *scheduleRepository) querySchedules(ctx context.Context, query string, args ...interface{}) ([]models.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	const q = `
		UPDATE schedules SET
			category_id=$1, title=$2, description=$3, start_time=$4, end_time=$5,
			is_recurring=$6, recurrence_type=$7, reminder_at=$8, updated_at=NOW()
		WHERE id=$9 AND user_id=$10`
	res, err := r.db.ExecContext(ctx, q,
		schedule.CategoryID, schedule.Title, schedule.Description,
		schedule.StartTime, schedule.EndTime, schedule.IsRecurring,
		schedule.RecurrenceType, schedule.ReminderAt, schedule.ID, schedule.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *scheduleRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM schedules WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
