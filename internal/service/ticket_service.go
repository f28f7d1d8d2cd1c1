package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/events"
	"github.com/hinjavav/lan-chat-app/internal/repository"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create opens a ticket for the calling user.
func (s *TicketService) Create(ctx context.Context, userID int64, subject, message string) (*domain.Ticket, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, apperrors.NewValidationError("Subject and message are required")
	}

	ticket := &domain.Ticket{
		UserID:  userID,
		Subject: subject,
		Message: message,
		Status:  domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, userID, events.TicketCreatedPayload{
		TicketID: ticket.ID,
		UserID:   userID,
		Subject:  ticket.Subject,
	})
	return ticket, nil
}

// List returns tickets visible to the caller: users see their own,
// admin and support see everything.
func (s *TicketService) List(ctx context.Context, identity domain.Identity) ([]domain.TicketView, error) {
	if identity.Role == domain.RoleUser {
		return s.tickets.ListByUser(ctx, identity.UserID)
	}
	return s.tickets.ListAll(ctx)
}

// UpdateStatus moves a ticket to the given status and assigns the
// acting agent as its support contact.
func (s *TicketService) UpdateStatus(ctx context.Context, agentID, ticketID int64, status domain.TicketStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("Invalid status value")
	}

	if err := s.tickets.UpdateStatus(ctx, ticketID, status, agentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Ticket not found")
		}
		return err
	}

	s.publish(ctx, events.EventTicketStatusChanged, agentID, events.TicketStatusChangedPayload{
		TicketID:  ticketID,
		NewStatus: status,
		SupportID: agentID,
	})
	return nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, actorID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
