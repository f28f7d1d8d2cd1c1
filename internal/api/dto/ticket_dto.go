package dto

import "github.com/hinjavav/lan-chat-app/internal/domain"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateTicketRequest payload for status changes.
type UpdateTicketRequest struct {
	Status domain.TicketStatus `json:"status"`
}
