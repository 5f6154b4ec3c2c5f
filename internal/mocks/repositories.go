package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/community-board-api/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu             sync.Mutex
	Users          map[string]*models.User
	UsernameToUser map[string]*models.User
	NicknameToUser map[string]*models.User
	Err            error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:          make(map[string]*models.User),
		UsernameToUser: make(map[string]*models.User),
		NicknameToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[user.ID] = user
	m.UsernameToUser[user.Username] = user
	m.NicknameToUser[user.Nickname] = user
	return nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.UsernameToUser[username], nil
}

func (m *MockUserRepository) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.NicknameToUser[nickname], nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.UsernameToUser[username]
	return exists, nil
}

func (m *MockUserRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.NicknameToUser[nickname]
	return exists, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Users), nil
}

// MockPostRepository is a mock implementation of PostRepository.
// AddParticipant holds the lock across check and append, mirroring the
// atomicity of the real guarded update.
type MockPostRepository struct {
	mu    sync.Mutex
	Posts map[string]*models.Post
	Order []string
	Err   error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Posts[post.ID] = post
	m.Order = append(m.Order, post.ID)
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	post, exists := m.Posts[id]
	if !exists {
		return nil, nil
	}
	clone := *post
	clone.Participants = append([]string{}, post.Participants...)
	return &clone, nil
}

func (m *MockPostRepository) List(ctx context.Context, category string) ([]*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	posts := []*models.Post{}
	for _, id := range m.Order {
		post, exists := m.Posts[id]
		if !exists {
			continue
		}
		if category != "" && post.Category != category {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *MockPostRepository) UpdateContent(ctx context.Context, id, title, content string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	post, exists := m.Posts[id]
	if !exists {
		return false, nil
	}
	post.Title = title
	post.Content = content
	return true, nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Posts[id]; !exists {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

func (m *MockPostRepository) AddParticipant(ctx context.Context, id, participant string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	post, exists := m.Posts[id]
	if !exists {
		return false, nil
	}
	if len(post.Participants) >= post.MaxParticipants {
		return false, nil
	}
	for _, p := range post.Participants {
		if p == participant {
			return false, nil
		}
	}
	post.Participants = append(post.Participants, participant)
	return true, nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Posts), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[string]*models.Comment
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Comments[id], nil
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	comments := []*models.Comment{}
	for _, comment := range m.Comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Comments[id]; !exists {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), nil
}
