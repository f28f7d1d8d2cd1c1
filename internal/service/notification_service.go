package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hinjavav/lan-chat-app/internal/events"
)

// NotificationService logs domain events as they occur. A webhook or
// mail fan-out would hang off the same handlers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleEvent("UserRegistered"))
	n.dispatcher.Subscribe(events.EventUserLoggedIn, n.handleEvent("UserLoggedIn"))
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleEvent("TicketCreated"))
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleEvent("TicketStatusChanged"))
}

func (n *NotificationService) handleEvent(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info(name,
			zap.String("event_id", event.ID),
			zap.Int64("actor_id", event.ActorID),
			zap.Any("payload", event.Payload))
		return nil
	}
}
