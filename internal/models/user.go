package models

import (
	"time"
)

// User represents a registered account. The password hash is never
// serialized into API responses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Nickname     string    `json:"nickname" db:"nickname"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
