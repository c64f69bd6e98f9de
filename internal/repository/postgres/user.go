package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkov/webauth-server/internal/model"
)

// pool is the subset of pgxpool.Pool the repository needs. Narrowed so
// pgxmock can stand in during unit tests.
type pool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db pool
}

func NewUserRepository(db pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, password_hash, created_at
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, password_hash, created_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create inserts the user and returns the stored row. The unique index
// on email is the single source of truth for duplicates: a concurrent
// insert of the same email surfaces here as ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (name, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING id, name, email, password_hash, created_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash,
	).Scan(
		&savedUser.ID, &savedUser.Name, &savedUser.Email, &savedUser.PasswordHash, &savedUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
