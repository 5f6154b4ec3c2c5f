package service

import (
	"context"
	"fmt"
	"time"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	users repository.UserRepository
	posts repository.PostRepository
	log   zerolog.Logger
}

func newPostService(users repository.UserRepository, posts repository.PostRepository, log zerolog.Logger) *postService {
	return &postService{
		users: users,
		posts: posts,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// Create inserts a new post owned by the user whose nickname matches
// req.Author.
func (s *postService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	user, err := s.users.GetByNickname(ctx, req.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to look up author: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &models.Post{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Title:        req.Title,
		Content:      req.Content,
		Author:       user.Nickname,
		Category:     req.Category,
		Participants: []string{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("author", post.Author).Str("category", post.Category).Msg("Post created")
	return post, nil
}

// List returns posts filtered by exact category. An empty category or
// the "전체" sentinel returns every post.
func (s *postService) List(ctx context.Context, category string) ([]*models.Post, error) {
	if category == models.CategoryAll {
		category = ""
	}
	posts, err := s.posts.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update overwrites title and content only; everything else on the
// post is untouched.
func (s *postService) Update(ctx context.Context, id, title, content string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrPostNotFound
	}
	updated, err := s.posts.UpdateContent(ctx, id, title, content)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if !updated {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post. Comments that referenced it are orphaned
// rather than cascaded.
func (s *postService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrPostNotFound
	}
	deleted, err := s.posts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return ErrPostNotFound
	}
	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.posts.Count(ctx)
}
