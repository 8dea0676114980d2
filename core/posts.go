package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PostService creates and reads posts. Creation requires an authenticated
// creator even though the HTTP route is already guarded: no post may exist
// without a creator reference.
type PostService struct {
	storage   PostStorage
	opTimeout time.Duration
}

func NewPostService(storage PostStorage, opTimeout time.Duration) *PostService {
	return &PostService{
		storage:   storage,
		opTimeout: opTimeout,
	}
}

// CreatePostInput contains the data for a new post. CreatorID comes from the
// session active at submission time.
type CreatePostInput struct {
	Content   string
	MediaName string
	MediaPath string
	CreatorID string
}

func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	if input.CreatorID == "" {
		return nil, ErrUnauthorized
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	post := &Post{
		Content:   input.Content,
		MediaName: input.MediaName,
		MediaPath: input.MediaPath,
		CreatorID: input.CreatorID,
	}

	if err := s.storage.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// List reads all posts as of call time, newest first.
func (s *PostService) List(ctx context.Context) ([]*Post, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	posts, err := s.storage.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*Post, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	post, err := s.storage.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (s *PostService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}
