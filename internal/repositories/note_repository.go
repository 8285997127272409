package repositories

import (
	"context"
	"database/sql"

	"dayplanner/internal/models"
)

type NoteRepository interface {
	Store(ctx context.Context, note *models.DailyNote) error
	FindByID(ctx context.Context, id, userID int64) (*models.DailyNote, error)
	FindAll(ctx context.Context, userID int64) ([]models.DailyNote, error)
	FindByDate(ctx context.Context, userID int64, day models.Date) (*models.DailyNote, error)
	ExistsForDate(ctx context.Context, userID int64, day models.Date) (bool, error)
	Update(ctx context.Context, note *models.DailyNote) error
	Delete(ctx context.Context, id, userID int64) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, user_id, category_id, title, content, note_date, created_at, updated_at`

func (r *noteRepository) Store(ctx context.Context, note *models.DailyNote) error {
	const q = `
		INSERT INTO daily_notes (user_id, category_id, title, content, note_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		note.UserID, note.CategoryID, note.Title, note.Content, note.NoteDate,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
}

func scanNote(scan func(dest ...interface{}) error) (models.DailyNote, error) {
	var n models.DailyNote
	err := scan(
		&n.ID, &n.UserID, &n.CategoryID, &n.Title, &n.Content, &n.NoteDate,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *noteRepository) FindByID(ctx context.Context, id, userID int64) (*models.DailyNote, error) {
	q := `SELECT ` + noteColumns + ` FROM daily_notes WHERE id = $1 AND user_id = $2`
	n, err := scanNote(r.db.QueryRowContext(ctx, q, id, userID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) FindAll(ctx context.Context, userID int64) ([]models.DailyNote, error) {
	q := `SELECT ` + noteColumns + ` FROM daily_notes WHERE user_id = $1 ORDER BY note_date DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.DailyNote
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) FindByDate(ctx context.Context, userID int64, day models.Date) (*models.DailyNote, error) {
	q := `SELECT ` + noteColumns + ` FROM daily_notes WHERE user_id = $1 AND note_date = $2`
	n, err := scanNote(r.db.QueryRowContext(ctx, q, userID, day).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) ExistsForDate(ctx context.Context, userID int64, day models.Date) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM daily_notes WHERE user_id = $1 AND note_date = $2)`,
		userID, day).Scan(&exists)
	return exists, err
}

func (r *noteRepository) Update(ctx context.Context, note *models.DailyNote) error {
	const q = `
		UPDATE daily_notes SET category_id=$1, title=$2, content=$3, note_date=$4, updated_at=NOW()
		WHERE id=$5 AND user_id=$6`
	res, err := r.db.ExecContext(ctx, q,
		note.CategoryID, note.Title, note.Content, note.NoteDate, note.ID, note.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *noteRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
