// Package user defines the account identity owning questions and answers.
package user

import "time"

// User is an authenticated account.
type User struct {
	ID           int64     `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is the one-to-one authorization record for a user. It is created
// automatically alongside the user with the admin flag unset.
type Role struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}
