package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
)

var (
	// ErrItemUnavailable marks checkouts blocked by a cart line whose catalog
	// item is missing or not orderable.
	ErrItemUnavailable = errors.New("cart item is not available for ordering")

	// ErrAllocationConflict is returned when checkout keeps losing the race for
	// the day's order number and runs out of attempts.
	ErrAllocationConflict = errors.New("order number allocation kept conflicting, try again")
)

// ItemUnavailableError reports which cart line blocked a checkout.
type ItemUnavailableError struct {
	ProductID kernel.UUID
	Name      string
}

func NewItemUnavailableError(productID kernel.UUID, name string) *ItemUnavailableError {
	return &ItemUnavailableError{
		ProductID: productID,
		Name:      name,
	}
}

func (e *ItemUnavailableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: product %s", ErrItemUnavailable, e.ProductID)
	}
	return fmt.Sprintf("%s: product %s (%s)", ErrItemUnavailable, e.ProductID, e.Name)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}
