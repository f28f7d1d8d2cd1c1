package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/hinjavav/lan-chat-app/internal/domain"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Email:    "a@x.com",
		FullName: "A",
		Role:     domain.RoleUser,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, exp, err := tm.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining := time.Until(exp); remaining < 23*time.Hour {
		t.Errorf("expected ~24h expiry, got %v remaining", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected userId 42, got %d", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("expected role user, got %q", claims.Role)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Nanosecond)

	token, _, err := tm.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = tm.ParseToken(token)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	// Expiry must be reported distinctly, never as a generic decode failure.
	if domainErr.Code != "TOKEN_EXPIRED" {
		t.Errorf("expected TOKEN_EXPIRED, got %q", domainErr.Code)
	}
}

func TestTokenManager_Invalid(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)
	other := NewTokenManager("other-secret", 24*time.Hour)

	token, _, err := other.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong signature", token: token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ParseToken(tt.token)
			if err == nil {
				t.Fatal("expected error")
			}
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("expected DomainError, got %T", err)
			}
			if domainErr.Code != "INVALID_TOKEN" {
				t.Errorf("expected INVALID_TOKEN, got %q", domainErr.Code)
			}
		})
	}
}
