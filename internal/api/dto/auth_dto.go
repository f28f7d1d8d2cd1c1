package dto

import "github.com/hinjavav/lan-chat-app/internal/domain"

// RegisterRequest payload for new accounts. Role is optional and
// defaults to "user".
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}

// LoginRequest payload for both login paths.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the public user
// projection.
type LoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// VerifyResponse reports a valid token and the live account record.
type VerifyResponse struct {
	Valid bool              `json:"valid"`
	User  domain.PublicUser `json:"user"`
}
