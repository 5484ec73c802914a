// Package rentals bridges the orders repository into the materials context.
package rentals

import (
	"context"

	materialsdomain "github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	materialsports "github.com/cantinota/noleggio-api/internal/domains/materials/ports"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ materialsports.RentalBook = (*Book)(nil)

// Book adapts the orders repository to the materials RentalBook port.
type Book struct {
	orders ordersports.Repository
}

func NewBook(orders ordersports.Repository) *Book {
	return &Book{orders: orders}
}

func (b *Book) HasOrdersForMaterial(ctx context.Context, materialID int64) (bool, error) {
	return b.orders.ExistsForMaterial(ctx, materialID)
}

func (b *Book) Lines(ctx context.Context) ([]materialsdomain.RentalLine, error) {
	orders, err := b.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]materialsdomain.RentalLine, 0, len(orders))
	for _, order := range orders {
		lines = append(lines, materialsdomain.RentalLine{
			MaterialID: order.MaterialID,
			Quantity:   order.Quantity,
			Returned:   order.Returned,
		})
	}
	return lines, nil
}
