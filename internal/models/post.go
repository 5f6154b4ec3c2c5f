package models

import (
	"time"
)

// Reserved category values. CategoryMeetup marks a post as a
// capacity-limited event; CategoryAll is the list-filter sentinel
// meaning "no filter".
const (
	CategoryMeetup = "모임"
	CategoryAll    = "전체"
)

// Post represents a board entry owned by a user. Author is the owner's
// nickname, denormalized at creation time. Participants and
// MaxParticipants are only meaningful for meetup posts; a plain post
// carries an empty list and a zero cap.
type Post struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	Content         string    `json:"content" db:"content"`
	Author          string    `json:"author" db:"author"`
	Category        string    `json:"category" db:"category"`
	Participants    []string  `json:"participants" db:"participants"`
	MaxParticipants int       `json:"maxParticipants" db:"max_participants"`
	CreatedAt       time.Time `json:"date" db:"created_at"`
}

// IsEvent reports whether this post carries meetup semantics.
func (p *Post) IsEvent() bool {
	return p.Category == CategoryMeetup
}
