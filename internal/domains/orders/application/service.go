package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	"github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

// Service orchestrates the orders bounded context use cases.
type Service struct {
	repo      ports.Repository
	catalog   ports.MaterialCatalog
	directory ports.CustomerDirectory
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, catalog ports.MaterialCatalog, directory ports.CustomerDirectory) *Service {
	return &Service{repo: repo, catalog: catalog, directory: directory}
}

// Create prices every line against the material's current weekend price and
// persists them in one atomic batch. The price is a snapshot: later material
// price changes never touch existing totals. Any unknown material fails the
// whole request, naming the offending line.
func (s *Service) Create(ctx context.Context, input ports.CreateOrderInput) ([]*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("%w: at least one material line is required", ErrInvalidInput)
	}
	orders := make([]*domain.Order, 0, len(input.Lines))
	for i, line := range input.Lines {
		material, err := s.catalog.GetByID(ctx, line.MaterialID)
		if err != nil {
			if errors.Is(err, ports.ErrMaterialNotFound) {
				return nil, &UnknownMaterialError{Line: i, MaterialID: line.MaterialID}
			}
			return nil, err
		}
		order := &domain.Order{
			CustomerID:   input.CustomerID,
			MaterialID:   line.MaterialID,
			Quantity:     line.Quantity,
			DeliveryDate: input.DeliveryDate,
			PickupDate:   input.PickupDate,
			Km:           input.Km,
			Total:        domain.ComputeTotal(material.WeekendPrice, float64(line.Quantity), input.Km),
			Note:         input.Note,
		}
		if err := order.Validate(); err != nil {
			return nil, mapError(err)
		}
		orders = append(orders, order)
	}
	return s.repo.CreateBatch(ctx, orders)
}

// List returns all orders joined with customer and material display data,
// newest delivery first.
func (s *Service) List(ctx context.Context) ([]ports.OrderListing, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.directory.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customerByID := make(map[int64]ports.DirectoryCustomer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	materialNameByID := make(map[int64]string, len(materials))
	for _, m := range materials {
		materialNameByID[m.ID] = m.Name
	}
	listings := make([]ports.OrderListing, 0, len(orders))
	for _, o := range orders {
		customer := customerByID[o.CustomerID]
		listings = append(listings, ports.OrderListing{
			Order:           *o,
			CustomerName:    customer.Name,
			CustomerAddress: customer.Address,
			MaterialName:    materialNameByID[o.MaterialID],
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		di, dj := listings[i].Order.DeliveryDate, listings[j].Order.DeliveryDate
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return listings[i].Order.ID > listings[j].Order.ID
	})
	return listings, nil
}

// Update fully replaces an order's rental data, re-snapshotting the total
// from the material's current price. Status flags are untouched.
func (s *Service) Update(ctx context.Context, id int64, input ports.UpdateOrderInput) (*domain.Order, error) {
	material, err := s.catalog.GetByID(ctx, input.MaterialID)
	if err != nil {
		if errors.Is(err, ports.ErrMaterialNotFound) {
			return nil, &UnknownMaterialError{MaterialID: input.MaterialID}
		}
		return nil, err
	}
	order := &domain.Order{
		ID:           id,
		CustomerID:   input.CustomerID,
		MaterialID:   input.MaterialID,
		Quantity:     input.Quantity,
		DeliveryDate: input.DeliveryDate,
		PickupDate:   input.PickupDate,
		Km:           input.Km,
		Total:        domain.ComputeTotal(material.WeekendPrice, float64(input.Quantity), input.Km),
		Note:         input.Note,
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Update(ctx, order)
}

// SetStatus overwrites the three status flags in one call.
func (s *Service) SetStatus(ctx context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error) {
	return s.repo.UpdateFlags(ctx, id, delivered, returned, paid)
}

// Delete removes an order by identity, unconditionally.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// MonthlyRevenue rolls up paid totals by calendar month of the delivery date.
func (s *Service) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MonthlyPaidRevenue(orders), nil
}

// MaterialStats counts orders per material, including zero-order materials.
func (s *Service) MaterialStats(ctx context.Context) ([]domain.MaterialOrderCount, error) {
	materials, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}
	return domain.CountByMaterial(names, orders), nil
}

var _ ports.Service = (*Service)(nil)
