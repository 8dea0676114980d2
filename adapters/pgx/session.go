package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dmarquez-dev/picboard/core"
)

func (a *Adapter) CreateSession(ctx context.Context, session *core.Session) error {
	query := `INSERT INTO public.sessions (id, user_id, token_hash, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := a.pool.Exec(ctx, query, session.ID, session.UserID, session.TokenHash, session.ExpiresAt, session.CreatedAt)
	return err
}

func (a *Adapter) GetSessionByHash(ctx context.Context, tokenHash string) (*core.Session, error) {
	q := `SELECT id, user_id, token_hash, expires_at, created_at FROM public.sessions WHERE token_hash = $1`

	session := &core.Session{}
	err := a.pool.QueryRow(ctx, q, tokenHash).Scan(&session.ID, &session.UserID, &session.TokenHash, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (a *Adapter) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.sessions WHERE token_hash = $1`, tokenHash)
	return err
}

func (a *Adapter) DeleteExpiredSessions(ctx context.Context) (int, error) {
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
