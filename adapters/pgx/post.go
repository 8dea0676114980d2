package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmarquez-dev/picboard/core"
)

// invalidTextRepresentation is the PostgreSQL error code raised when a path
// parameter cannot be cast to uuid.
const invalidTextRepresentation = "22P02"

func (a *Adapter) CreatePost(ctx context.Context, post *core.Post) error {
	query := `INSERT INTO public.posts (content, creator_id, media_name, media_path) VALUES ($1, $2, $3, $4) RETURNING id, created_at`

	var id string
	var createdAt time.Time

	err := a.pool.QueryRow(ctx, query, post.Content, post.CreatorID, post.MediaName, post.MediaPath).Scan(&id, &createdAt)
	if err != nil {
		return err
	}

	post.ID = id
	post.CreatedAt = createdAt
	return nil
}

func (a *Adapter) GetPostByID(ctx context.Context, id string) (*core.Post, error) {
	q := `SELECT id, content, creator_id, media_name, media_path, created_at FROM public.posts WHERE id = $1`

	post := &core.Post{}
	err := a.pool.QueryRow(ctx, q, id).Scan(&post.ID, &post.Content, &post.CreatorID, &post.MediaName, &post.MediaPath, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrPostNotFound
		}
		// A malformed id (not a uuid) is a lookup miss, not a server fault.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
			return nil, core.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (a *Adapter) ListPosts(ctx context.Context) ([]*core.Post, error) {
	q := `SELECT id, content, creator_id, media_name, media_path, created_at FROM public.posts ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*core.Post
	for rows.Next() {
		post := &core.Post{}
		if err := rows.Scan(&post.ID, &post.Content, &post.CreatorID, &post.MediaName, &post.MediaPath, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
