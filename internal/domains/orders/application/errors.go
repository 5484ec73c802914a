package application

import (
	"errors"
	"fmt"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid ordine input")

// UnknownMaterialError reports which line of a creation request referenced a
// material that does not exist. One bad line fails the whole request; no
// sibling lines are persisted.
type UnknownMaterialError struct {
	Line       int
	MaterialID int64
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("materiale %d on line %d is not valid", e.MaterialID, e.Line)
}

func (e *UnknownMaterialError) Unwrap() error { return ErrInvalidInput }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidCustomerID) ||
		errors.Is(err, domain.ErrInvalidMaterialID) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
