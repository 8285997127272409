package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"dayplanner/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id, userID int64) (*models.Task, error)
	FindAll(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	FindDueOn(ctx context.Context, userID int64, day models.Date) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	UpdateCompletedAt(ctx context.Context, id, userID int64, completedAt *time.Time) error
	Delete(ctx context.Context, id, userID int64) error
	CountPending(ctx context.Context, userID int64) (int, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, user_id, category_id, title, description, priority,
	due_date, reminder_at, completed_at, created_at, updated_at`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const q = `
		INSERT INTO tasks (
			user_id, category_id, title, description, priority,
			due_date, reminder_at, completed_at, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		task.UserID, task.CategoryID, task.Title, task.Description, task.Priority,
		task.DueDate, task.ReminderAt, task.CompletedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func scanTask(scan func(dest ...interface{}) error) (models.Task, error) {
	var t models.Task
	err := scan(
		&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Description, &t.Priority,
		&t.DueDate, &t.ReminderAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *taskRepository) FindByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	t, err := scanTask(r.db.QueryRowContext(ctx, q, id, userID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) FindAll(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	baseQuery := `SELECT ` + taskColumns + ` FROM tasks`

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}
	argID := 2

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argID))
		args = append(args, *filter.CategoryID)
		argID++
	}
	if filter.Completed != nil {
		if *filter.Completed {
			conditions = append(conditions, "completed_at IS NOT NULL")
		} else {
			conditions = append(conditions, "completed_at IS NULL")
		}
	}
	if filter.DueOn != nil {
		conditions = append(conditions, fmt.Sprintf("due_date::date = $%d", argID))
		args = append(args, filter.DueOn.String())
		argID++
	}

	baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	baseQuery += ` ORDER BY completed_at ASC NULLS FIRST, due_date ASC NULLS LAST, ` + priorityRank + ` DESC`

	return r.queryTasks(ctx, baseQuery, args...)
}

// priorityRank orders the string enum high > medium > low inside SQL.
const priorityRank = `CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END`

// FindDueOn lists the tasks whose due date falls on the given calendar day,
// highest priority first, then creation order.
func (r *taskRepository) FindDueOn(ctx context.Context, userID int64, day models.Date) ([]models.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1 AND due_date::date = $2
		ORDER BY ` + priorityRank + ` DESC, created_at ASC`
	return r.queryTasks(ctx, q, userID, day.String())
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	const q = `
		UPDATE tasks SET
			category_id=$1, title=$2, description=$3, priority=$4,
			due_date=$5, reminder_at=$6, completed_at=$7, updated_at=NOW()
		WHERE id=$8 AND user_id=$9`
	res, err := r.db.ExecContext(ctx, q,
		task.CategoryID, task.Title, task.Description, task.Priority,
		task.DueDate, task.ReminderAt, task.CompletedAt, task.ID, task.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *taskRepository) UpdateCompletedAt(ctx context.Context, id, userID int64, completedAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed_at=$1, updated_at=NOW() WHERE id=$2 AND user_id=$3`,
		completedAt, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *taskRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *taskRepository) CountPending(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND completed_at IS NULL`,
		userID).Scan(&count)
	return count, err
}
