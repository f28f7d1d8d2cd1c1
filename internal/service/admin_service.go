package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hinjavav/lan-chat-app/internal/auth"
	"github.com/hinjavav/lan-chat-app/internal/config"
	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/persistence"
	"github.com/hinjavav/lan-chat-app/internal/repository"
	apperrors "github.com/hinjavav/lan-chat-app/pkg/util"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 10 * time.Second
)

// Pagination describes the listing envelope returned to admin clients.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// AdminService serves the admin-gated user management surface.
type AdminService struct {
	users      repository.UserRepository
	messages   repository.MessageRepository
	cache      *persistence.Redis
	logger     *zap.Logger
	bcryptCost int
}

// AdminDependencies bundles requirements for the admin service.
type AdminDependencies struct {
	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Cache       *persistence.Redis
	Logger      *zap.Logger
}

// NewAdminService builds the service.
func NewAdminService(cfg config.Config, deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.UserRepo,
		messages:   deps.MessageRepo,
		cache:      deps.Cache,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// ListUsers returns a page of accounts, newest first.
func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]domain.UserListItem, Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Pagination{
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return users, pagination, nil
}

// Stats aggregates per-role, online and message counters. Results are
// cached briefly in Redis; a cache failure falls through to the
// database.
func (s *AdminService) Stats(ctx context.Context) (*domain.SystemStats, error) {
	if cached, ok := s.cache.GetString(ctx, statsCacheKey); ok {
		var stats domain.SystemStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	online, err := s.users.CountOnline(ctx)
	if err != nil {
		return nil, err
	}
	totalMessages, err := s.messages.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.SystemStats{
		Users:         byRole,
		OnlineUsers:   online,
		TotalMessages: totalMessages,
	}

	if encoded, err := json.Marshal(stats); err == nil {
		s.cache.SetString(ctx, statsCacheKey, string(encoded), statsCacheTTL)
	}
	return stats, nil
}

// CreateUser provisions an account with an explicit role.
func (s *AdminService) CreateUser(ctx context.Context, email, password, fullName string, role domain.Role) (*domain.User, error) {
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
	return user, nil
}
