package ports

import (
	"context"
	"errors"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("ordine not found")

// Repository persists rental orders.
type Repository interface {
	// CreateBatch inserts all orders as one atomic operation: either every
	// line is persisted or none is.
	CreateBatch(ctx context.Context, orders []*domain.Order) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Update overwrites everything except the three status flags and
	// returns the fresh row.
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// UpdateFlags overwrites only the three status flags; the total stays
	// untouched.
	UpdateFlags(ctx context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error)
	// Delete removes an order by identity. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
	ExistsForCustomer(ctx context.Context, customerID int64) (bool, error)
	ExistsForMaterial(ctx context.Context, materialID int64) (bool, error)
}
