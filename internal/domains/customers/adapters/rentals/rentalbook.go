// Package rentals bridges the orders repository into the customers context.
package rentals

import (
	"context"

	customersports "github.com/cantinota/noleggio-api/internal/domains/customers/ports"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ customersports.RentalBook = (*Book)(nil)

// Book adapts the orders repository to the customers RentalBook port.
type Book struct {
	orders ordersports.Repository
}

func NewBook(orders ordersports.Repository) *Book {
	return &Book{orders: orders}
}

func (b *Book) HasOrdersForCustomer(ctx context.Context, customerID int64) (bool, error) {
	return b.orders.ExistsForCustomer(ctx, customerID)
}
