package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hinjavav/lan-chat-app/internal/api/dto"
	"github.com/hinjavav/lan-chat-app/internal/auth"
	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/service"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// TicketsHandler manages the ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create handles POST /api/tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNoToken()
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	ticket, err := h.service.Create(c.UserContext(), identity.UserID, req.Subject, req.Message)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Ticket created successfully",
		"ticketId": ticket.ID,
	})
}

// List handles GET /api/tickets. Users see their own tickets; admin
// and support see all of them.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNoToken()
	}

	tickets, err := h.service.List(c.UserContext(), identity)
	if err != nil {
		return err
	}
	if tickets == nil {
		tickets = []domain.TicketView{}
	}

	return c.JSON(fiber.Map{"tickets": tickets})
}

// UpdateStatus handles PATCH /api/tickets/:id.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNoToken()
	}

	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewNotFound("Ticket not found")
	}

	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	if err := h.service.UpdateStatus(c.UserContext(), identity.UserID, ticketID, req.Status); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Ticket updated successfully"})
}
