package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hinjavav/lan-chat-app/internal/api/dto"
	"github.com/hinjavav/lan-chat-app/internal/auth"
	"github.com/hinjavav/lan-chat-app/internal/service"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// AuthHandler exposes registration, login and token verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return apperrors.NewValidationError("All fields required")
	}

	user, err := h.auth.Register(c.UserContext(), req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, false, "Login successful")
}

// AdminLogin handles POST /api/auth/admin-login, restricting the
// lookup to admin accounts.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, true, "Admin login successful")
}

func (h *AuthHandler) login(c *fiber.Ctx, adminOnly bool, message string) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Email and password required")
	}

	user, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password, adminOnly)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Message: message,
		Token:   token,
		User:    user.Public(),
	})
}

// Verify handles GET /api/auth/verify, re-reading the live account.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Verify(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.JSON(dto.VerifyResponse{
		Valid: true,
		User:  user.Public(),
	})
}
