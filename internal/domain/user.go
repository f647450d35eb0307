package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Caller is the authenticated identity attached to a request by the
// access gate.
type Caller struct {
	ID       int
	Username string
	Role     string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
