package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/hinjavav/lan-chat-app/internal/domain"
)

func newTestAdminService(messages int64) (*AdminService, *mockUserRepository) {
	users := newMockUserRepository()
	svc := NewAdminService(testConfig(), AdminDependencies{
		UserRepo:    users,
		MessageRepo: &mockMessageRepository{total: messages},
		Cache:       nil, // degrade to uncached reads
		Logger:      zap.NewNop(),
	})
	return svc, users
}

func seedUsers(t *testing.T, users *mockUserRepository, count int, role domain.Role, online bool) {
	t.Helper()
	for i := 0; i < count; i++ {
		user := &domain.User{
			Email:    string(role) + string(rune('a'+i)) + "@x.com",
			FullName: "Seed",
			Role:     role,
			Online:   online,
		}
		if err := users.Create(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestAdminService_ListUsersPagination(t *testing.T) {
	svc, users := newTestAdminService(0)
	seedUsers(t, users, 25, domain.RoleUser, false)
	ctx := context.Background()

	tests := []struct {
		name           string
		page           int
		limit          int
		wantLen        int
		wantPage       int
		wantTotalPages int
	}{
		{name: "first page defaults", page: 0, limit: 0, wantLen: 10, wantPage: 1, wantTotalPages: 3},
		{name: "second page", page: 2, limit: 10, wantLen: 10, wantPage: 2, wantTotalPages: 3},
		{name: "last partial page", page: 3, limit: 10, wantLen: 5, wantPage: 3, wantTotalPages: 3},
		{name: "large limit", page: 1, limit: 100, wantLen: 25, wantPage: 1, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, pagination, err := svc.ListUsers(ctx, tt.page, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != tt.wantLen {
				t.Errorf("expected %d items, got %d", tt.wantLen, len(items))
			}
			if pagination.Total != 25 {
				t.Errorf("expected total 25, got %d", pagination.Total)
			}
			if pagination.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, pagination.Page)
			}
			if pagination.TotalPages != tt.wantTotalPages {
				t.Errorf("expected %d total pages, got %d", tt.wantTotalPages, pagination.TotalPages)
			}
		})
	}
}

func TestAdminService_Stats(t *testing.T) {
	svc, users := newTestAdminService(12)
	seedUsers(t, users, 2, domain.RoleAdmin, true)
	seedUsers(t, users, 3, domain.RoleSupport, false)
	seedUsers(t, users, 5, domain.RoleUser, true)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Users[domain.RoleAdmin] != 2 || stats.Users[domain.RoleSupport] != 3 || stats.Users[domain.RoleUser] != 5 {
		t.Errorf("unexpected role counts: %v", stats.Users)
	}
	if stats.OnlineUsers != 7 {
		t.Errorf("expected 7 online users, got %d", stats.OnlineUsers)
	}
	if stats.TotalMessages != 12 {
		t.Errorf("expected 12 messages, got %d", stats.TotalMessages)
	}
}

func TestAdminService_CreateUser(t *testing.T) {
	svc, _ := newTestAdminService(0)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "s@x.com", "pw1234", "S", domain.RoleSupport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != domain.RoleSupport {
		t.Errorf("expected role support, got %q", created.Role)
	}

	if _, err := svc.CreateUser(ctx, "s@x.com", "pw1234", "S", domain.RoleUser); err == nil {
		t.Error("expected conflict on duplicate email")
	} else if code := domainCode(t, err); code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %q", code)
	}

	if _, err := svc.CreateUser(ctx, "t@x.com", "pw1234", "T", "owner"); err == nil {
		t.Error("expected validation error for unknown role")
	} else if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED, got %q", code)
	}
}
