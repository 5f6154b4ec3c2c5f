package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/community-board-api/internal/api"
	"github.com/community-board-api/internal/auth"
	"github.com/community-board-api/internal/config"
	"github.com/community-board-api/internal/mocks"
	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type testMocks struct {
	account *mocks.MockAccountService
	post    *mocks.MockPostService
	comment *mocks.MockCommentService
	event   *mocks.MockEventService
}

func setupTestRouter(authRequired bool) (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		account: mocks.NewMockAccountService(),
		post:    mocks.NewMockPostService(),
		comment: mocks.NewMockCommentService(),
		event:   mocks.NewMockEventService(),
	}

	services := &service.Services{
		Account:   m.account,
		Post:      m.post,
		Comment:   m.comment,
		Event:     m.event,
		UserCount: func(ctx context.Context) (int, error) { return 3, nil },
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RequestTimeout: 5 * time.Second,
		},
		Auth: config.AuthConfig{
			Secret:   "test-secret",
			TokenTTL: time.Hour,
			Required: authRequired,
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, nil, log)

	return router, m
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(false)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "community-board-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, m := setupTestRouter(false)
	m.post.Total = 7
	m.comment.Total = 12

	w := doJSON(router, "GET", "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	db := response["database"].(map[string]interface{})
	if db["users"].(float64) != 3 {
		t.Errorf("Expected 3 users, got %v", db["users"])
	}
	if db["posts"].(float64) != 7 {
		t.Errorf("Expected 7 posts, got %v", db["posts"])
	}
	if db["comments"].(float64) != 12 {
		t.Errorf("Expected 12 comments, got %v", db["comments"])
	}
}

func TestRegister(t *testing.T) {
	router, m := setupTestRouter(false)

	w := doJSON(router, "POST", "/register", gin.H{
		"username": "alice", "password": "pw1234", "nickname": "minji",
	})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["success"] != true {
		t.Errorf("Expected success envelope, got %v", response)
	}
	if len(m.account.Registered) != 1 {
		t.Errorf("Expected one registration, got %d", len(m.account.Registered))
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router, m := setupTestRouter(false)
	m.account.RegisterErr = service.ErrUsernameTaken

	w := doJSON(router, "POST", "/register", gin.H{
		"username": "alice", "password": "pw1234", "nickname": "minji",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["success"] != false {
		t.Errorf("Expected failure envelope, got %v", response)
	}
	if response["message"] != "Username already exists" {
		t.Errorf("Unexpected message: %v", response["message"])
	}
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := setupTestRouter(false)

	w := doJSON(router, "POST", "/register", gin.H{"username": "alice"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing fields, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	router, m := setupTestRouter(false)
	m.account.LoginResult = &service.LoginResult{Nickname: "minji", Token: "tok"}

	w := doJSON(router, "POST", "/login", gin.H{"username": "alice", "password": "pw1234"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["nickname"] != "minji" {
		t.Errorf("Expected nickname 'minji', got %v", response["nickname"])
	}
	if response["token"] != "tok" {
		t.Errorf("Expected token in payload, got %v", response["token"])
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, m := setupTestRouter(false)
	m.account.LoginErr = service.ErrInvalidCredentials

	w := doJSON(router, "POST", "/login", gin.H{"username": "alice", "password": "wrong"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["message"] != "Invalid username or password" {
		t.Errorf("Unexpected message: %v", response["message"])
	}
}

func TestCreatePost(t *testing.T) {
	router, m := setupTestRouter(false)

	w := doJSON(router, "POST", "/create", gin.H{
		"title": "hello", "content": "world", "author": "minji", "category": "자유",
	})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if len(m.post.Created) != 1 || m.post.Created[0].Category != "자유" {
		t.Errorf("Post create not forwarded: %+v", m.post.Created)
	}
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	router, m := setupTestRouter(false)
	m.post.CreateErr = service.ErrUserNotFound

	w := doJSON(router, "POST", "/create", gin.H{
		"title": "hello", "content": "world", "author": "ghost", "category": "자유",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["message"] != "User not found" {
		t.Errorf("Unexpected message: %v", response["message"])
	}
}

func TestListPosts(t *testing.T) {
	router, m := setupTestRouter(false)
	m.post.Posts = []*models.Post{
		{ID: "p1", Title: "one", Category: "자유"},
		{ID: "p2", Title: "two", Category: "질문"},
	}

	w := doJSON(router, "GET", "/posts?category=%EC%9E%90%EC%9C%A0", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if m.post.LastCategory != "자유" {
		t.Errorf("Category query not forwarded, got %q", m.post.LastCategory)
	}

	var posts []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("Expected a JSON array: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("Expected 2 posts, got %d", len(posts))
	}
}

func TestListPosts_StoreFailure(t *testing.T) {
	router, m := setupTestRouter(false)
	m.post.ListErr = context.DeadlineExceeded

	w := doJSON(router, "GET", "/posts", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	if response["message"] != "Server error" {
		t.Errorf("Infrastructure failures must stay generic, got %v", response["message"])
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	router, m := setupTestRouter(false)
	m.post.UpdateErr = service.ErrPostNotFound

	w := doJSON(router, "PUT", "/posts/some-id", gin.H{"title": "t", "content": "c"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeletePost(t *testing.T) {
	router, m := setupTestRouter(false)

	w := doJSON(router, "DELETE", "/posts/some-id", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if len(m.post.Deleted) != 1 || m.post.Deleted[0] != "some-id" {
		t.Errorf("Delete not forwarded: %v", m.post.Deleted)
	}
}

func TestListComments_RequiresPostID(t *testing.T) {
	router, _ := setupTestRouter(false)

	w := doJSON(router, "GET", "/comments", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without postId, got %d", w.Code)
	}
}

func TestListComments(t *testing.T) {
	router, m := setupTestRouter(false)
	m.comment.Comments = []*models.Comment{
		{ID: "c2", PostID: "p1", Content: "later"},
		{ID: "c1", PostID: "p1", Content: "earlier"},
	}

	w := doJSON(router, "GET", "/comments?postId=p1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var comments []models.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &comments); err != nil {
		t.Fatalf("Expected a JSON array: %v", err)
	}
	if len(comments) != 2 || comments[0].ID != "c2" {
		t.Errorf("Comment order not preserved: %v", comments)
	}
}

func TestAddComment(t *testing.T) {
	router, m := setupTestRouter(false)
	m.comment.AddResult = &models.Comment{ID: "c1", PostID: "p1", Author: "minji", Content: "hi"}

	w := doJSON(router, "POST", "/posts/p1/comments", gin.H{"author": "minji", "content": "hi"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeEnvelope(t, w)
	comment, okCast := response["comment"].(map[string]interface{})
	if !okCast || comment["id"] != "c1" {
		t.Errorf("Expected comment payload, got %v", response)
	}
}

func TestAddComment_PostNotFound(t *testing.T) {
	router, m := setupTestRouter(false)
	m.comment.AddErr = service.ErrPostNotFound

	w := doJSON(router, "POST", "/posts/missing/comments", gin.H{"author": "minji", "content": "hi"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	router, m := setupTestRouter(false)
	m.comment.DeleteErr = service.ErrCommentNotFound

	w := doJSON(router, "DELETE", "/comments/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestCreateEvent(t *testing.T) {
	router, m := setupTestRouter(false)

	w := doJSON(router, "POST", "/create_event", gin.H{
		"title": "board games", "description": "friday", "author": "minji", "maxParticipants": 4,
	})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if len(m.event.Created) != 1 || m.event.Created[0].MaxParticipants != 4 {
		t.Errorf("Event create not forwarded: %+v", m.event.Created)
	}
}

func TestCreateEvent_InvalidCapacity(t *testing.T) {
	router, _ := setupTestRouter(false)

	w := doJSON(router, "POST", "/create_event", gin.H{
		"title": "board games", "description": "friday", "author": "minji", "maxParticipants": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for zero capacity, got %d", w.Code)
	}
}

func TestListEvents(t *testing.T) {
	router, m := setupTestRouter(false)
	m.event.Events = []*models.Post{{ID: "e1", Category: models.CategoryMeetup}}

	w := doJSON(router, "GET", "/events", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var events []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("Expected a JSON array: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(events))
	}
}

func TestJoinEvent_Conflicts(t *testing.T) {
	router, m := setupTestRouter(false)

	m.event.JoinErr = service.ErrEventFull
	w := doJSON(router, "POST", "/join_event/e1", gin.H{"participant": "minji"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for full event, got %d", w.Code)
	}
	if msg := decodeEnvelope(t, w)["message"]; msg != "Event is full" {
		t.Errorf("Unexpected message: %v", msg)
	}

	m.event.JoinErr = service.ErrAlreadyJoined
	w = doJSON(router, "POST", "/join_event/e1", gin.H{"participant": "minji"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for repeat join, got %d", w.Code)
	}
	if msg := decodeEnvelope(t, w)["message"]; msg != "Already joined the event" {
		t.Errorf("Unexpected message: %v", msg)
	}

	m.event.JoinErr = service.ErrEventNotFound
	w = doJSON(router, "POST", "/join_event/missing", gin.H{"participant": "minji"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown event, got %d", w.Code)
	}
}

func TestJoinEvent_Success(t *testing.T) {
	router, m := setupTestRouter(false)

	w := doJSON(router, "POST", "/join_event/e1", gin.H{"participant": "minji"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if len(m.event.Joined) != 1 || m.event.Joined[0] != [2]string{"e1", "minji"} {
		t.Errorf("Join not forwarded: %v", m.event.Joined)
	}
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	router, _ := setupTestRouter(true)

	w := doJSON(router, "POST", "/create", gin.H{
		"title": "t", "content": "c", "author": "minji", "category": "자유",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	// Reads stay open even with auth enabled.
	w = doJSON(router, "GET", "/posts", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for open read, got %d", w.Code)
	}
}

func TestAuthRequired_AcceptsIssuedToken(t *testing.T) {
	router, m := setupTestRouter(true)

	token, err := auth.GenerateToken("user-1", "minji", []byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(gin.H{"title": "t", "content": "c", "author": "minji", "category": "자유"})
	req := httptest.NewRequest("POST", "/create", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.post.Created) != 1 {
		t.Errorf("Expected the create to reach the service")
	}
}

func TestAuthRequired_RejectsBadToken(t *testing.T) {
	router, _ := setupTestRouter(true)

	req := httptest.NewRequest("DELETE", "/posts/p1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for bad token, got %d", w.Code)
	}
}
