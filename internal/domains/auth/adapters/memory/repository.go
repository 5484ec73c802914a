package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/cantinota/noleggio-api/internal/domains/auth/domain"
	"github.com/cantinota/noleggio-api/internal/domains/auth/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory admin store, keyed by username.
type Repository struct {
	mu     sync.RWMutex
	admins map[string]*domain.Admin
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{admins: map[string]*domain.Admin{}}
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	admin, ok := r.admins[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *Repository) Save(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	clone := *admin
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.admins[clone.Username] = &clone
	copy := clone
	return &copy, nil
}
