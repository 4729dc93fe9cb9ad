package users

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("user already exists")
	ErrInvalidSession = errors.New("invalid session")
)
