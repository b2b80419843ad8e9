package user

import (
	c "finschool/internal/core/domain/common"
	e "finschool/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type Login string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type User struct {
	ID           ID
	Name         string
	Surname      string
	Login        Login
	Email        c.Email
	PasswordHash PasswordHash
	IsAdmin      bool
	RegisteredAt time.Time
}

func (u *User) Validate() error {
	if u.Login == "" {
		return e.NewInvalidStateError(fmt.Sprintf("login is not set for user %d", u.ID))
	}
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}
