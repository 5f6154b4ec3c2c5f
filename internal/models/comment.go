package models

import (
	"time"
)

// Comment references its post by id only. There is deliberately no
// foreign-key relationship: a comment can outlive the post it was
// written for (post deletion does not cascade).
type Comment struct {
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	Author    string    `json:"author" db:"author"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}
