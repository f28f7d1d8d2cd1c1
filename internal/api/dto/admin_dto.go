package dto

import "github.com/hinjavav/lan-chat-app/internal/domain"

// CreateUserRequest payload for admin-provisioned accounts.
type CreateUserRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}
