// Package directory bridges the customers repository into the orders context.
package directory

import (
	"context"

	customersports "github.com/cantinota/noleggio-api/internal/domains/customers/ports"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ ordersports.CustomerDirectory = (*Directory)(nil)

// Directory adapts the customers repository to the orders CustomerDirectory port.
type Directory struct {
	customers customersports.Repository
}

func NewDirectory(customers customersports.Repository) *Directory {
	return &Directory{customers: customers}
}

func (d *Directory) ListAll(ctx context.Context) ([]ordersports.DirectoryCustomer, error) {
	customers, err := d.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ordersports.DirectoryCustomer, 0, len(customers))
	for _, customer := range customers {
		entries = append(entries, ordersports.DirectoryCustomer{
			ID:      customer.ID,
			Name:    customer.Name,
			Address: customer.ShippingAddress,
		})
	}
	return entries, nil
}
