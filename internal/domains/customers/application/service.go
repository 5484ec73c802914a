// Package application implements the customers bounded context use cases.
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/cantinota/noleggio-api/internal/domains/customers/domain"
	"github.com/cantinota/noleggio-api/internal/domains/customers/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid cliente input")
	// ErrHasOrders blocks deletion of a customer referenced by orders.
	ErrHasOrders = errors.New("cliente referenced by existing ordini")
)

// Service orchestrates the customers use cases.
type Service struct {
	repo    ports.Repository
	rentals ports.RentalBook
}

func NewService(repo ports.Repository, rentals ports.RentalBook) *Service {
	return &Service{repo: repo, rentals: rentals}
}

// Create persists a new customer.
func (s *Service) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("cliente is nil")
	}
	customer.ID = 0
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, customer)
}

// Update overwrites an existing customer.
func (s *Service) Update(ctx context.Context, id int64, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("cliente is nil")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	customer.ID = id
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, customer)
}

// List returns all customers ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Delete removes a customer unless an order still references them.
func (s *Service) Delete(ctx context.Context, id int64) error {
	used, err := s.rentals.HasOrdersForCustomer(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrHasOrders
	}
	return s.repo.Delete(ctx, id)
}
