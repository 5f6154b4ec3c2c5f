package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/community-board-api/internal/auth"
	"github.com/community-board-api/internal/config"
	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the salt rounds the original service used.
const bcryptCost = 10

// accountService is the concrete implementation of AccountService
type accountService struct {
	users   repository.UserRepository
	authCfg *config.AuthConfig
	log     zerolog.Logger
}

func newAccountService(users repository.UserRepository, authCfg *config.AuthConfig, log zerolog.Logger) *accountService {
	return &accountService{
		users:   users,
		authCfg: authCfg,
		log:     log.With().Str("service", "account").Logger(),
	}
}

// Register creates a new account. The password is stored as a bcrypt
// hash, never as plaintext. Username and nickname must both be unique;
// the pre-checks give friendly conflicts and the unique constraints
// close the race between two concurrent registrations.
func (s *accountService) Register(ctx context.Context, username, password, nickname string) error {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.users.NicknameExists(ctx, nickname)
	if err != nil {
		return fmt.Errorf("failed to check nickname: %w", err)
	}
	if taken {
		return ErrNicknameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Nickname:     nickname,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if conflictErr := uniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("username", username).Str("nickname", nickname).Msg("User registered")
	return nil
}

// Login verifies credentials and returns the user's nickname plus a
// signed session token. The error is identical for an unknown username
// and a wrong password.
func (s *accountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Nickname, []byte(s.authCfg.Secret), s.authCfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info().Str("username", username).Msg("Login successful")
	return &LoginResult{Nickname: user.Nickname, Token: token}, nil
}

// uniqueViolation maps a Postgres duplicate-key error on one of the
// users constraints to the matching domain error, or nil.
func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_nickname_key":
		return ErrNicknameTaken
	}
	return nil
}
