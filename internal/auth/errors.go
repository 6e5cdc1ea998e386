package auth

import "errors"

var (
	ErrUsernamePasswordRequired = errors.New("Username and password cannot be empty")
	ErrUsernameTaken            = errors.New("Username already exists")
	ErrInvalidCredentials       = errors.New("Invalid username or password")
)
