package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	"github.com/cantinota/noleggio-api/internal/domains/materials/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid materiale input")
	// ErrHasOrders blocks deletion of a material referenced by orders.
	ErrHasOrders = errors.New("materiale referenced by existing ordini")
)

// Service orchestrates the materials bounded context use cases.
type Service struct {
	repo    ports.Repository
	rentals ports.RentalBook
}

// NewService wires the materials service with its dependencies.
func NewService(repo ports.Repository, rentals ports.RentalBook) *Service {
	return &Service{repo: repo, rentals: rentals}
}

// Create persists a new material.
func (s *Service) Create(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	if material == nil {
		return nil, errors.New("materiale is nil")
	}
	material.ID = 0
	if err := material.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, material)
}

// Update overwrites an existing material. Changing the weekend price never
// touches totals of orders already priced against the old value.
func (s *Service) Update(ctx context.Context, id int64, material *domain.Material) (*domain.Material, error) {
	if material == nil {
		return nil, errors.New("materiale is nil")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	material.ID = id
	if err := material.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, material)
}

// List returns all materials ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Material, error) {
	return s.repo.List(ctx)
}

// Delete removes a material unless an order still references it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	used, err := s.rentals.HasOrdersForMaterial(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrHasOrders
	}
	return s.repo.Delete(ctx, id)
}

// Availability derives the per-material occupancy view from current stock
// and the not-yet-returned rental lines. The read is not isolated from
// concurrent order creation; two simultaneous creates can both observe the
// same available count, and the resulting overbooking shows up here as a
// negative number.
func (s *Service) Availability(ctx context.Context) ([]domain.Availability, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.rentals.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ComputeAvailability(materials, lines), nil
}
