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

// commentService is the concrete implementation of CommentService
type commentService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

func newCommentService(posts repository.PostRepository, comments repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		posts:    posts,
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForPost returns all comments for a post, newest first.
func (s *commentService) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return []*models.Comment{}, nil
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Add persists the comment first and only then verifies the post
// exists. A comment against an unknown post id is reported as not
// found but stays persisted; the original service behaved this way and
// the behavior is kept as documented.
func (s *commentService) Add(ctx context.Context, postID, author, content string) (*models.Comment, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up post: %w", err)
	}
	if post == nil {
		s.log.Warn().Str("comment_id", comment.ID).Str("post_id", postID).Msg("Comment persisted against missing post")
		return nil, ErrPostNotFound
	}

	s.log.Info().Str("comment_id", comment.ID).Str("post_id", postID).Msg("Comment added")
	return comment, nil
}

// Delete removes a comment by id. With comments keyed by post_id there
// is no per-post id list to clean up; the delete is the whole
// operation.
func (s *commentService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrCommentNotFound
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up comment: %w", err)
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if _, err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.comments.Count(ctx)
}
