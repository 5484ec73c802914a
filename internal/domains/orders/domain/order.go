package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCustomerID = errors.New("cliente id must be greater than zero")
	ErrInvalidMaterialID = errors.New("materiale id must be greater than zero")
	ErrInvalidQuantity   = errors.New("quantita cannot be negative")
)

// Order models one rental line: a single material rented by a customer for
// the delivery/pickup window. Total is a snapshot taken when the line is
// created or fully updated; it is never recomputed when the material's price
// changes afterwards.
type Order struct {
	ID           int64
	CustomerID   int64
	MaterialID   int64
	Quantity     int64
	DeliveryDate time.Time
	PickupDate   time.Time
	Km           float64
	Total        float64
	Delivered    bool
	Returned     bool
	Paid         bool
	Note         string
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	if o.MaterialID <= 0 {
		return ErrInvalidMaterialID
	}
	if o.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// SetFlags overwrites the three status flags in one step. There is no
// partial flag update; callers always resend all three.
func (o *Order) SetFlags(delivered, returned, paid bool) {
	o.Delivered = delivered
	o.Returned = returned
	o.Paid = paid
}
