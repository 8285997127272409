package repositories

import (
	"context"
	"database/sql"
	"time"

	"dayplanner/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// refresh helpers
	UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash,
	refresh_token, refresh_expires_at, refresh_revoked, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		user.Name, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		rt  sql.NullString
		rte sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&rt, &rte, &u.RefreshRevoked, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if rt.Valid {
		u.RefreshToken = &rt.String
	}
	if rte.Valid {
		u.RefreshExpiresAt = &rte.Time
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *userRepository) UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE, updated_at=NOW()
		WHERE id=$3`
	_, err := r.db.ExecContext(ctx, q, token, expiresAt, userID)
	return err
}

// RotateRefresh swaps the stored refresh token in one statement so a reused
// old token cannot win a race against the rotation.
func (r *userRepository) RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	q := `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, updated_at=NOW()
		WHERE refresh_token=$3 AND refresh_revoked=FALSE
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRowContext(ctx, q, newToken, newExpiresAt, oldToken))
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, token))
}
