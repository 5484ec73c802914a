package ports

import (
	"context"
	"errors"
	"time"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
)

var ErrMaterialNotFound = errors.New("materiale not found")

// CatalogMaterial is the slice of the materials context the orders use cases
// need: a current price snapshot and a display name.
type CatalogMaterial struct {
	ID           int64
	Name         string
	WeekendPrice float64
}

// MaterialCatalog resolves materials for pricing snapshots and listings.
type MaterialCatalog interface {
	GetByID(ctx context.Context, id int64) (*CatalogMaterial, error)
	ListAll(ctx context.Context) ([]CatalogMaterial, error)
}

// DirectoryCustomer carries the customer display data joined into listings.
type DirectoryCustomer struct {
	ID      int64
	Name    string
	Address string
}

// CustomerDirectory resolves customer display data for joined listings.
type CustomerDirectory interface {
	ListAll(ctx context.Context) ([]DirectoryCustomer, error)
}

// OrderLine is one (material, quantity) pairing within a creation request.
type OrderLine struct {
	MaterialID int64
	Quantity   int64
}

// CreateOrderInput creates one order row per line; lines share the customer,
// dates, distance, and note.
type CreateOrderInput struct {
	CustomerID   int64
	Lines        []OrderLine
	DeliveryDate time.Time
	PickupDate   time.Time
	Km           float64
	Note         string
}

// UpdateOrderInput fully replaces an order's rental data. Status flags are
// not part of the full update.
type UpdateOrderInput struct {
	CustomerID   int64
	MaterialID   int64
	Quantity     int64
	DeliveryDate time.Time
	PickupDate   time.Time
	Km           float64
	Note         string
}

// OrderListing is an order joined with customer and material display data.
type OrderListing struct {
	Order           domain.Order
	CustomerName    string
	CustomerAddress string
	MaterialName    string
}

// Service is the orders use-case surface consumed by the HTTP layer and the
// observability decorator.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) ([]*domain.Order, error)
	List(ctx context.Context) ([]OrderListing, error)
	Update(ctx context.Context, id int64, input UpdateOrderInput) (*domain.Order, error)
	SetStatus(ctx context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	MaterialStats(ctx context.Context) ([]domain.MaterialOrderCount, error)
}
