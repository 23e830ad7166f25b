package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrManagerAccessRequired = errors.New("manager access required")
)
