package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmarquez-dev/picboard/core"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	query := `INSERT INTO public.users (username, email, password_hash, avatar_path) VALUES ($1, $2, $3, $4) RETURNING id, created_at`

	var id string
	var createdAt time.Time

	err := a.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.AvatarPath).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return core.ErrUserExists
		}
		return err
	}

	user.ID = id
	user.CreatedAt = createdAt
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	q := `SELECT id, username, email, password_hash, avatar_path, created_at FROM public.users WHERE id = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.AvatarPath, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT id, username, email, password_hash, avatar_path, created_at FROM public.users WHERE email = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.AvatarPath, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
