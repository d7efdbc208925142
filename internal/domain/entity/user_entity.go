package entity

import (
	"time"
)

// DefaultAcademy is assigned when a user registers without naming an academy.
const DefaultAcademy = "Default Academy"

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field and never serialized.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Academy   string    `json:"academy"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the projection returned alongside a session token.
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}

// UserSummary is the directory view of a user, as indexed for search.
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Academy string `json:"academy"`
	Role    Role   `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Academy: u.Academy, Role: u.Role}
}
