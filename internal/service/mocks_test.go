package service

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/hinjavav/lan-chat-app/internal/domain"
	"github.com/hinjavav/lan-chat-app/internal/events"
)

// mockUserRepository is an in-memory implementation of UserRepository.
type mockUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*domain.User)}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *mockUserRepository) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *mockUserRepository) SetOnline(ctx context.Context, id int64, online bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Online = online
	return nil
}

func (r *mockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.UserListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var result []domain.UserListItem
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		user := r.users[id]
		result = append(result, domain.UserListItem{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			Online:    user.Online,
			CreatedAt: user.CreatedAt,
		})
	}
	return result, nil
}

func (r *mockUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *mockUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.Role]int64)
	for _, user := range r.users {
		counts[user.Role]++
	}
	return counts, nil
}

func (r *mockUserRepository) CountOnline(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, user := range r.users {
		if user.Online {
			total++
		}
	}
	return total, nil
}

// mockTicketRepository is an in-memory implementation of TicketRepository.
type mockTicketRepository struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]*domain.Ticket
	names   map[int64]string
}

func newMockTicketRepository() *mockTicketRepository {
	return &mockTicketRepository{
		tickets: make(map[int64]*domain.Ticket),
		names:   make(map[int64]string),
	}
}

func (r *mockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ticket.ID = r.nextID
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *mockTicketRepository) ListAll(ctx context.Context) ([]domain.TicketView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketView
	for _, ticket := range r.tickets {
		result = append(result, r.view(ticket))
	}
	return result, nil
}

func (r *mockTicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.TicketView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketView
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			result = append(result, r.view(ticket))
		}
	}
	return result, nil
}

func (r *mockTicketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus, supportID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.SupportID = &supportID
	return nil
}

func (r *mockTicketRepository) view(ticket *domain.Ticket) domain.TicketView {
	view := domain.TicketView{
		ID:        ticket.ID,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}
	if name, ok := r.names[ticket.UserID]; ok {
		view.UserName = &name
	}
	if ticket.SupportID != nil {
		if name, ok := r.names[*ticket.SupportID]; ok {
			view.SupportName = &name
		}
	}
	return view
}

// mockMessageRepository reports a fixed message count.
type mockMessageRepository struct {
	total int64
}

func (r *mockMessageRepository) Count(ctx context.Context) (int64, error) {
	return r.total, nil
}

// mockDispatcher records published events.
type mockDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *mockDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *mockDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *mockDispatcher) byType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, event := range d.published {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}
