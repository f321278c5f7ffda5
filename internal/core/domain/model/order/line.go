package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")

// Line is one (catalog item, quantity, unit price) entry within an order.
// The unit price is the snapshot taken at order creation; it is set exactly
// once and never recomputed from the catalog, which is what keeps historical
// orders immune to later price changes.
//
// Lines are immutable and unique per catalog item within their order.
type Line struct {
	// productID identifies the catalog item
	productID kernel.UUID

	// quantity is the ordered unit count (always > 0, frozen at creation)
	quantity int

	// unitPrice is the per-unit price snapshot captured at order creation
	unitPrice kernel.Money

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates an order line with validation. unitPrice is the snapshot to
// freeze; callers obtain it from the catalog item's effective price at
// checkout time.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog item the line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the frozen per-unit price snapshot.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns unit price times quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
