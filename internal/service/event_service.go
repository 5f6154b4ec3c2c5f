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

// eventService implements meetup semantics on top of the posts table.
type eventService struct {
	users repository.UserRepository
	posts repository.PostRepository
	log   zerolog.Logger
}

func newEventService(users repository.UserRepository, posts repository.PostRepository, log zerolog.Logger) *eventService {
	return &eventService{
		users: users,
		posts: posts,
		log:   log.With().Str("service", "event").Logger(),
	}
}

// Create inserts a meetup post. The category is forced to "모임" and
// the request description becomes the post content.
func (s *eventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Post, error) {
	user, err := s.users.GetByNickname(ctx, req.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to look up author: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &models.Post{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		Title:           req.Title,
		Content:         req.Description,
		Author:          user.Nickname,
		Category:        models.CategoryMeetup,
		Participants:    []string{},
		MaxParticipants: req.MaxParticipants,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("author", post.Author).Int("max_participants", post.MaxParticipants).Msg("Event created")
	return post, nil
}

// List returns all meetup posts.
func (s *eventService) List(ctx context.Context) ([]*models.Post, error) {
	events, err := s.posts.List(ctx, models.CategoryMeetup)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Join adds a participant to an event. The underlying append is a
// single guarded update, so capacity and membership hold under
// concurrent joins; when it matches no row, one read classifies the
// failure. Conflict precedence is full before already-joined.
func (s *eventService) Join(ctx context.Context, postID, participant string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return ErrEventNotFound
	}

	for {
		joined, err := s.posts.AddParticipant(ctx, postID, participant)
		if err != nil {
			return fmt.Errorf("failed to join event: %w", err)
		}
		if joined {
			s.log.Info().Str("post_id", postID).Str("participant", participant).Msg("Joined event")
			return nil
		}

		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to look up event: %w", err)
		}
		switch {
		case post == nil:
			return ErrEventNotFound
		case len(post.Participants) >= post.MaxParticipants:
			return ErrEventFull
		case contains(post.Participants, participant):
			return ErrAlreadyJoined
		}

		// The guarded update lost a race but the snapshot shows room
		// and no membership; retry unless the request is done.
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
