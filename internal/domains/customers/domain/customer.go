// Package domain holds the customers bounded context model.
package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("nome is required")

// Customer is a rental client. Address and phone are free-form and optional.
type Customer struct {
	ID              int64
	Name            string
	ShippingAddress string
	Phone           string
}

// Validate checks the customer invariants.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
