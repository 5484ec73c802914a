package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("nome is required")
	ErrNegativeStock = errors.New("quantita_disponibile cannot be negative")
	ErrNegativePrice = errors.New("prezzo_weekend cannot be negative")
)

// Material is a rentable item. StockTotal is the owned quantity, static
// inventory rather than live availability.
type Material struct {
	ID           int64
	Name         string
	StockTotal   int64
	WeekendPrice float64
}

// Validate enforces invariants on the aggregate.
func (m *Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.StockTotal < 0 {
		return ErrNegativeStock
	}
	if m.WeekendPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
