package store

import (
	"sync"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Registry holds every known user. Users are created once and never
// deleted; inactive users stay resolvable by id but are excluded from
// assignable candidate lists.
type Registry struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// AddUser registers a user with the next sequential id.
func (r *Registry) AddUser(name string, role domain.UserRole, status domain.UserStatus) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := &domain.User{
		ID:        r.nextID,
		Name:      name,
		Role:      role,
		Status:    status,
		CreatedAt: time.Now(),
	}
	r.users = append(r.users, user)
	r.nextID++
	return user
}

// ListUsers returns every user in registration order.
func (r *Registry) ListUsers() []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*domain.User{}, r.users...)
}

// ListAgentsFirst orders the roster agents before admins, for the login
// selector.
func (r *Registry) ListAgentsFirst() []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ordered := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Role == domain.UserRoleAgent {
			ordered = append(ordered, u)
		}
	}
	for _, u := range r.users {
		if u.Role != domain.UserRoleAgent {
			ordered = append(ordered, u)
		}
	}
	return ordered
}

// ListActiveExcluding returns active users other than exclude, in
// registration order. exclude may be nil.
func (r *Registry) ListActiveExcluding(exclude *domain.User) []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidates := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Status != domain.UserStatusActive {
			continue
		}
		if exclude != nil && u.ID == exclude.ID {
			continue
		}
		candidates = append(candidates, u)
	}
	return candidates
}

// GetByID resolves a user by id; absence is a normal result.
func (r *Registry) GetByID(id int) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// NameOf resolves a user id to its display name at presentation time.
// Returns the empty string for nil or unknown ids.
func (r *Registry) NameOf(id *int) string {
	if id == nil {
		return ""
	}
	if user, ok := r.GetByID(*id); ok {
		return user.Name
	}
	return ""
}
