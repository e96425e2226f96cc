package user

import "errors"

var (
	ErrUserRequired = errors.New("user id is required")
	ErrUserNotFound = errors.New("user not found")
)
