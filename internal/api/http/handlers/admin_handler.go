package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hinjavav/lan-chat-app/internal/api/dto"
	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/service"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// AdminHandler serves the admin-gated user management endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := parseIntQuery(c.Query("page"), 1)
	limit := parseIntQuery(c.Query("limit"), 10)

	users, pagination, err := h.admin.ListUsers(c.UserContext(), page, limit)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.UserListItem{}
	}

	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": pagination,
	})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// CreateUser handles POST /api/admin/create-user.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return apperrors.NewValidationError("Invalid input")
	}

	user, err := h.admin.CreateUser(c.UserContext(), req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("User created successfully as %s", user.Role),
		"userId":  user.ID,
	})
}

func parseIntQuery(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
