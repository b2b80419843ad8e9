package user

import (
	"errors"
)

var (
	ErrLoginAlreadyExists        = errors.New("login already exists")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrSessionDoesNotExist       = errors.New("session does not exist")
	ErrPermissionDenied          = errors.New("permission denied")
	ErrPasswordResetTokenExpired = errors.New("password reset token expired")
	ErrPasswordResetTokenInvalid = errors.New("password reset token invalid")
)
