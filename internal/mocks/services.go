package mocks

import (
	"context"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	RegisterErr error
	LoginResult *service.LoginResult
	LoginErr    error
	Registered  []models.RegisterRequest
}

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Register(ctx context.Context, username, password, nickname string) error {
	if m.RegisterErr != nil {
		return m.RegisterErr
	}
	m.Registered = append(m.Registered, models.RegisterRequest{Username: username, Password: password, Nickname: nickname})
	return nil
}

func (m *MockAccountService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return m.LoginResult, nil
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	Posts        []*models.Post
	CreateErr    error
	ListErr      error
	UpdateErr    error
	DeleteErr    error
	LastCategory string
	Created      []*models.CreatePostRequest
	Deleted      []string
	Total        int
}

func NewMockPostService() *MockPostService {
	return &MockPostService{}
}

func (m *MockPostService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, req)
	return &models.Post{Title: req.Title, Content: req.Content, Author: req.Author, Category: req.Category}, nil
}

func (m *MockPostService) List(ctx context.Context, category string) ([]*models.Post, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.LastCategory = category
	return m.Posts, nil
}

func (m *MockPostService) Update(ctx context.Context, id, title, content string) error {
	return m.UpdateErr
}

func (m *MockPostService) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

func (m *MockPostService) Count(ctx context.Context) (int, error) {
	return m.Total, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	Comments  []*models.Comment
	ListErr   error
	AddResult *models.Comment
	AddErr    error
	DeleteErr error
	Deleted   []string
	Total     int
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Comments, nil
}

func (m *MockCommentService) Add(ctx context.Context, postID, author, content string) (*models.Comment, error) {
	if m.AddErr != nil {
		return nil, m.AddErr
	}
	return m.AddResult, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

func (m *MockCommentService) Count(ctx context.Context) (int, error) {
	return m.Total, nil
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	Events    []*models.Post
	CreateErr error
	ListErr   error
	JoinErr   error
	Created   []*models.CreateEventRequest
	Joined    [][2]string
}

func NewMockEventService() *MockEventService {
	return &MockEventService{}
}

func (m *MockEventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Post, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, req)
	return &models.Post{Title: req.Title, Content: req.Description, Author: req.Author, Category: models.CategoryMeetup, MaxParticipants: req.MaxParticipants}, nil
}

func (m *MockEventService) List(ctx context.Context) ([]*models.Post, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Events, nil
}

func (m *MockEventService) Join(ctx context.Context, postID, participant string) error {
	if m.JoinErr != nil {
		return m.JoinErr
	}
	m.Joined = append(m.Joined, [2]string{postID, participant})
	return nil
}
