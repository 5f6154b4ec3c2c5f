package models

// Request bodies for all write endpoints. Binding tags give malformed
// requests a targeted 400 instead of leaking into the store as a 500.

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreatePostRequest is the body of POST /create. Author is the
// creating user's nickname.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// UpdatePostRequest is the body of PUT /posts/:id. Only title and
// content are writable after creation.
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddCommentRequest is the body of POST /posts/:id/comments.
type AddCommentRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateEventRequest is the body of POST /create_event. Description is
// stored as the post's content.
type CreateEventRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Author          string `json:"author" binding:"required"`
	MaxParticipants int    `json:"maxParticipants" binding:"required,min=1"`
}

// JoinEventRequest is the body of POST /join_event/:postId.
type JoinEventRequest struct {
	Participant string `json:"participant" binding:"required"`
}
