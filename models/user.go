package models

import "time"

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
)

// User is an identity record. It is created at signup and never modified.
type User struct {
	UserID       string    `bson:"userId" json:"userId"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidRole reports whether role is one of the supported roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleProfessor
}

// UserCredentials is the request body for signup and login.
type UserCredentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
