package ports

import (
	"context"
	"errors"

	"github.com/cantinota/noleggio-api/internal/domains/customers/domain"
)

var ErrNotFound = errors.New("cliente not found")

// Repository persists customers.
type Repository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	// List returns all customers ordered by id ascending.
	List(ctx context.Context) ([]domain.Customer, error)
}

// RentalBook is the orders-context view the customers use cases need.
type RentalBook interface {
	HasOrdersForCustomer(ctx context.Context, customerID int64) (bool, error)
}
