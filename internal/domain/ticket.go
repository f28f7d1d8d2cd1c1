package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is one of the enumerated values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID        int64
	UserID    int64
	SupportID *int64
	Subject   string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
}

// TicketView is a ticket row joined with the owner's and the assigned
// agent's display names, as returned by listings.
type TicketView struct {
	ID          int64        `json:"id"`
	Subject     string       `json:"subject"`
	Message     string       `json:"message"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UserName    *string      `json:"user_name"`
	SupportName *string      `json:"support_name"`
}
