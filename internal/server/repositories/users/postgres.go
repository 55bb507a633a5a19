package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edgcastillo/saveddit/internal/common"
	"github.com/edgcastillo/saveddit/internal/dbx"
	"github.com/edgcastillo/saveddit/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, username, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, created_at
         `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, reddit_username_enc, reddit_password_enc, created_at
         FROM users
         WHERE username = $1
         `
	return r.getOne(ctx, query, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, reddit_username_enc, reddit_password_enc, created_at
         FROM users
         WHERE email = $1
         `
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.RedditUsernameEnc, &user.RedditPasswordEnc, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// SetRedditCredentials updates both encrypted columns with a single UPDATE,
// which Postgres applies atomically.
func (r *PostgresRepository) SetRedditCredentials(ctx context.Context, userID, encUsername, encPassword string) error {
	query :=
		`UPDATE users SET reddit_username_enc = $2, reddit_password_enc = $3
         WHERE id = $1
         `

	res, err := r.db.ExecContext(ctx, query, userID, encUsername, encPassword)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
