package service

import (
	"context"

	"github.com/community-board-api/internal/config"
	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// AccountService defines the interface for registration and login
type AccountService interface {
	Register(ctx context.Context, username, password, nickname string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginResult carries the client-facing identity returned on a
// successful login. Token is a stateless session supplement; clients
// that ignore it lose nothing.
type LoginResult struct {
	Nickname string
	Token    string
}

// PostService defines the interface for plain post operations
type PostService interface {
	Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context, category string) ([]*models.Post, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Add(ctx context.Context, postID, author, content string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// EventService defines the interface for meetup operations
type EventService interface {
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Join(ctx context.Context, postID, participant string) error
}

// Services holds all service interfaces
type Services struct {
	Account AccountService
	Post    PostService
	Comment CommentService
	Event   EventService

	// UserCount backs the metrics endpoint; the other counts come from
	// the post and comment services.
	UserCount func(ctx context.Context) (int, error)
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Account:   newAccountService(repos.User, &cfg.Auth, log),
		Post:      newPostService(repos.User, repos.Post, log),
		Comment:   newCommentService(repos.Post, repos.Comment, log),
		Event:     newEventService(repos.User, repos.Post, log),
		UserCount: repos.User.Count,
	}
}
