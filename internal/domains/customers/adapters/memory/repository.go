package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cantinota/noleggio-api/internal/domains/customers/domain"
	"github.com/cantinota/noleggio-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory customer persistence adapter.
type Repository struct {
	mu        sync.RWMutex
	customers map[int64]*domain.Customer
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{customers: map[int64]*domain.Customer{}}
}

func (r *Repository) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("cliente is nil")
	}
	clone := *customer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.customers[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		list = append(list, *customer)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
