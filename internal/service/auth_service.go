package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hinjavav/lan-chat-app/internal/auth"
	"github.com/hinjavav/lan-chat-app/internal/config"
	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/events"
	"github.com/hinjavav/lan-chat-app/internal/repository"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

// AuthService coordinates registration, login and token verification.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
	bootstrap  bool
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
		bootstrap:  cfg.Auth.BootstrapPassword,
	}
}

// Register creates a new account. Role defaults to "user" when empty.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string, role domain.Role) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Invalid input")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("User already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:         email,
		PasswordHash:  hash,
		FullName:      fullName,
		Role:          role,
		EmailVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return user, nil
}

// Login authenticates an email/password pair and issues a session
// token. When adminOnly is set, the lookup is restricted to accounts
// with the admin role and failures read "Invalid admin credentials".
func (s *AuthService) Login(ctx context.Context, email, password string, adminOnly bool) (*domain.User, string, time.Time, error) {
	failure := func() error {
		if adminOnly {
			return apperrors.NewInvalidCredentials("Invalid admin credentials")
		}
		return apperrors.NewInvalidCredentials("Invalid credentials")
	}

	var user *domain.User
	var err error
	if adminOnly {
		user, err = s.users.GetByEmailAndRole(ctx, email, domain.RoleAdmin)
	} else {
		user, err = s.users.GetByEmail(ctx, email)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, failure()
		}
		return nil, "", time.Time{}, err
	}

	// Bootstrap branch first: when it matches, the stored hash is never
	// consulted.
	valid := s.bootstrap && auth.BootstrapAccepted(user.Email, password, adminOnly)
	if !valid {
		valid = auth.ComparePassword(user.PasswordHash, password) == nil
	}
	if !valid {
		return nil, "", time.Time{}, failure()
	}

	// Side effect before token issuance, not rolled back on later
	// failure. Nothing ever sets the flag back to false on the HTTP
	// path; see the gateway's connection gauge for live presence.
	if err := s.users.SetOnline(ctx, user.ID, true); err != nil {
		return nil, "", time.Time{}, err
	}
	user.Online = true

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.ID, events.UserLoggedInPayload{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		AdminPath: adminOnly,
	})
	return user, token, exp, nil
}

// Verify resolves a presented token back to the live account record.
// Unlike the route middleware it does not trust the embedded claims:
// the user is re-fetched by id so a deleted account fails here.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("User not found")
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actorID int64, payload interface{}) {
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
