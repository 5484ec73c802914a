package ports

import (
	"context"
	"errors"

	"github.com/cantinota/noleggio-api/internal/domains/materials/domain"
)

var ErrNotFound = errors.New("materiale not found")

// Repository persists materials.
type Repository interface {
	Save(ctx context.Context, material *domain.Material) (*domain.Material, error)
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
	Delete(ctx context.Context, id int64) error
	// List returns all materials ordered by name ascending.
	List(ctx context.Context) ([]domain.Material, error)
}

// RentalBook is the orders-context view the materials use cases need: the
// referential delete guard and the lines availability aggregates over.
type RentalBook interface {
	HasOrdersForMaterial(ctx context.Context, materialID int64) (bool, error)
	Lines(ctx context.Context) ([]domain.RentalLine, error)
}
