package response

import (
	"finschool/internal/core/domain/user"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Login        string    `json:"login"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = du.Name
	u.Surname = du.Surname
	u.Login = string(du.Login)
	u.Email = string(du.Email)
	u.IsAdmin = du.IsAdmin
	u.RegisteredAt = du.RegisteredAt
}
