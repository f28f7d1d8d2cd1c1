package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hinjavav/lan-chat-app/internal/domain"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// RequireRole gates a route on the identity's role being one of the
// allowed set. A gate failure short-circuits before the handler runs.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewNoToken()
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("Access denied")
		}
		return c.Next()
	}
}

// RequireAdmin gates a route to admins.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// RequireSupport gates a route to admins or support agents.
func RequireSupport() fiber.Handler {
	return RequireRole(domain.RoleAdmin, domain.RoleSupport)
}
