package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	"github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

// CreateBatch validates every line before touching the map, so a bad line
// leaves nothing behind.
func (r *Repository) CreateBatch(_ context.Context, orders []*domain.Order) ([]*domain.Order, error) {
	for _, order := range orders {
		if order == nil {
			return nil, errors.New("ordine is nil")
		}
		if err := order.Validate(); err != nil {
			return nil, err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	created := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		clone := *order
		r.nextID++
		clone.ID = r.nextID
		r.orders[clone.ID] = &clone
		copy := clone
		created = append(created, &copy)
	}
	return created, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("ordine is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[order.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	// flags survive a full update
	clone.Delivered = existing.Delivered
	clone.Returned = existing.Returned
	clone.Paid = existing.Paid
	r.orders[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) UpdateFlags(_ context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	order.SetFlags(delivered, returned, paid)
	clone := *order
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) ExistsForCustomer(_ context.Context, customerID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) ExistsForMaterial(_ context.Context, materialID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.MaterialID == materialID {
			return true, nil
		}
	}
	return false, nil
}
