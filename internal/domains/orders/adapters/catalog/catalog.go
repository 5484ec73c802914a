// Package catalog bridges the materials repository into the orders context.
package catalog

import (
	"context"
	"errors"

	materialsports "github.com/cantinota/noleggio-api/internal/domains/materials/ports"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ ordersports.MaterialCatalog = (*Catalog)(nil)

// Catalog adapts the materials repository to the orders MaterialCatalog port.
type Catalog struct {
	materials materialsports.Repository
}

func NewCatalog(materials materialsports.Repository) *Catalog {
	return &Catalog{materials: materials}
}

func (c *Catalog) GetByID(ctx context.Context, id int64) (*ordersports.CatalogMaterial, error) {
	material, err := c.materials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, materialsports.ErrNotFound) {
			return nil, ordersports.ErrMaterialNotFound
		}
		return nil, err
	}
	return &ordersports.CatalogMaterial{
		ID:           material.ID,
		Name:         material.Name,
		WeekendPrice: material.WeekendPrice,
	}, nil
}

func (c *Catalog) ListAll(ctx context.Context) ([]ordersports.CatalogMaterial, error) {
	materials, err := c.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ordersports.CatalogMaterial, 0, len(materials))
	for _, material := range materials {
		entries = append(entries, ordersports.CatalogMaterial{
			ID:           material.ID,
			Name:         material.Name,
			WeekendPrice: material.WeekendPrice,
		})
	}
	return entries, nil
}
