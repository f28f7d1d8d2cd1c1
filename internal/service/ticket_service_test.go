package service

import (
	"context"
	"testing"

	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/events"
)

func newTestTicketService() (*TicketService, *mockTicketRepository, *mockDispatcher) {
	tickets := newMockTicketRepository()
	dispatcher := &mockDispatcher{}
	svc := NewTicketService(TicketDependencies{
		TicketRepo: tickets,
		Dispatcher: dispatcher,
	})
	return svc, tickets, dispatcher
}

func TestTicketService_Create(t *testing.T) {
	svc, _, dispatcher := newTestTicketService()
	ctx := context.Background()

	tests := []struct {
		name    string
		subject string
		message string
		wantErr bool
	}{
		{name: "valid", subject: "Printer broken", message: "It beeps", wantErr: false},
		{name: "missing subject", subject: "", message: "It beeps", wantErr: true},
		{name: "missing message", subject: "Printer broken", message: "", wantErr: true},
		{name: "whitespace only", subject: "   ", message: "It beeps", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := svc.Create(ctx, 7, tt.subject, tt.message)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ticket.Status != domain.TicketStatusOpen {
				t.Errorf("expected status open, got %q", ticket.Status)
			}
			if ticket.UserID != 7 {
				t.Errorf("expected owner 7, got %d", ticket.UserID)
			}
		})
	}

	if got := len(dispatcher.byType(events.EventTicketCreated)); got != 1 {
		t.Errorf("expected 1 ticket_created event, got %d", got)
	}
}

func TestTicketService_ListScoping(t *testing.T) {
	svc, _, _ := newTestTicketService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, "s1", "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, 2, "s2", "m2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		identity domain.Identity
		want     int
	}{
		{name: "user sees own", identity: domain.Identity{UserID: 1, Role: domain.RoleUser}, want: 1},
		{name: "other user sees own", identity: domain.Identity{UserID: 2, Role: domain.RoleUser}, want: 1},
		{name: "user with none", identity: domain.Identity{UserID: 3, Role: domain.RoleUser}, want: 0},
		{name: "support sees all", identity: domain.Identity{UserID: 9, Role: domain.RoleSupport}, want: 2},
		{name: "admin sees all", identity: domain.Identity{UserID: 9, Role: domain.RoleAdmin}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets, err := svc.List(ctx, tt.identity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tickets) != tt.want {
				t.Errorf("expected %d tickets, got %d", tt.want, len(tickets))
			}
		})
	}
}

func TestTicketService_UpdateStatus(t *testing.T) {
	svc, tickets, dispatcher := newTestTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "subject", "message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(ctx, 5, created.ID, domain.TicketStatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := tickets.tickets[created.ID]
	if stored.Status != domain.TicketStatusInProgress {
		t.Errorf("expected in_progress, got %q", stored.Status)
	}
	if stored.SupportID == nil || *stored.SupportID != 5 {
		t.Errorf("expected acting agent 5 assigned, got %v", stored.SupportID)
	}
	if got := len(dispatcher.byType(events.EventTicketStatusChanged)); got != 1 {
		t.Errorf("expected 1 ticket_status_changed event, got %d", got)
	}
}

func TestTicketService_UpdateStatusErrors(t *testing.T) {
	svc, _, _ := newTestTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "subject", "message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		ticketID int64
		status   domain.TicketStatus
		wantCode string
	}{
		{name: "invalid status", ticketID: created.ID, status: "resolved", wantCode: "VALIDATION_FAILED"},
		{name: "unknown ticket", ticketID: 999, status: domain.TicketStatusClosed, wantCode: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateStatus(ctx, 5, tt.ticketID, tt.status)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := domainCode(t, err); code != tt.wantCode {
				t.Errorf("expected %q, got %q", tt.wantCode, code)
			}
		})
	}
}
