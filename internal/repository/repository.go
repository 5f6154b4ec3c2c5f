package repository

import (
	"context"

	"github.com/community-board-api/internal/database"
	"github.com/community-board-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByNickname(ctx context.Context, nickname string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PostRepository defines the interface for post data operations.
// List with an empty category returns every post.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, category string) ([]*models.Post, error)
	UpdateContent(ctx context.Context, id, title, content string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AddParticipant(ctx context.Context, id, participant string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Post:    NewPostRepo(db),
		Comment: NewCommentRepo(db),
	}
}
