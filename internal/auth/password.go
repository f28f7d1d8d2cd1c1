package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bootstrapPassword is the literal accepted by the operator bootstrap
// branch. Known backdoor carried over from the original deployment so a
// fresh install can log in before any password is set; remove before
// production use outside a trusted LAN.
const bootstrapPassword = "admin123"

// HashPassword hashes a plaintext password with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its stored hash. bcrypt's
// comparison is constant-time.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BootstrapAccepted reports whether the presented password matches the
// bootstrap literal for this account. On the admin-only login path the
// literal is accepted for any account the role-restricted lookup
// resolved; on the standard path only for emails containing "admin".
// The hash check is bypassed entirely when this returns true.
func BootstrapAccepted(email, password string, adminLookup bool) bool {
	if password != bootstrapPassword {
		return false
	}
	if adminLookup {
		return true
	}
	return strings.Contains(email, "admin")
}
