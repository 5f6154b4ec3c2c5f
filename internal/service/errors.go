package service

import (
	"errors"
)

// Domain errors. Handlers translate these into HTTP statuses; anything
// else coming out of a service is an infrastructure failure and maps
// to a 500.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNicknameTaken      = errors.New("nickname already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrEventFull          = errors.New("event is full")
	ErrAlreadyJoined      = errors.New("already joined the event")
)
