package user

import (
	"context"
	c "finschool/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Name         string
	Surname      string
	Login        Login
	Email        c.Email
	PasswordHash PasswordHash
	IsAdmin      bool
	RegisteredAt time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByLogin(ctx context.Context, login Login) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	Delete(ctx context.Context, id ID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
