package domain

import "time"

// Role determines which gated operations a caller may perform.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleSupport Role = "support"
	RoleUser    Role = "user"
)

// Valid reports whether the role is one of the three enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupport, RoleUser:
		return true
	}
	return false
}

// User is the domain model for accounts held in the users table.
type User struct {
	ID            int64
	Email         string
	PasswordHash  string
	FullName      string
	Role          Role
	Online        bool
	EmailVerified bool
	CreatedAt     time.Time
}

// PublicUser is the projection safe to return to clients. The password
// hash is never included.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// UserListItem is the admin listing projection, including presence and
// creation time.
type UserListItem struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	Online    bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at"`
}

// SystemStats aggregates counters for the admin stats endpoint.
type SystemStats struct {
	Users         map[Role]int64 `json:"users"`
	OnlineUsers   int64          `json:"online_users"`
	TotalMessages int64          `json:"total_messages"`
}
