package product

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the snapshot of a catalog item the order core works against.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must have a valid standard price
//   - A discount price, when set, must be a valid price
//   - Must carry a valid availability status
//   - Can only be created through the NewProduct constructor
type Product struct {
	// id is the unique identifier of the catalog item
	id kernel.UUID

	// name is the display name shown in availability errors
	name string

	// price is the standard catalog price
	price kernel.Money

	// discountPrice, when non-nil, overrides price at checkout
	discountPrice *kernel.Money

	// status decides whether the item is orderable
	status Status

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a Product with validation. The discount price is optional;
// pass nil when the item has no active discount.
func NewProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	discountPrice *kernel.Money,
	status Status,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setDiscountPrice(discountPrice),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the standard catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// DiscountPrice returns the active discount price.
// Returns nil if no discount is set.
func (p *Product) DiscountPrice() *kernel.Money {
	return p.discountPrice
}

// Status returns the availability status of the product.
func (p *Product) Status() Status {
	return p.status
}

// EffectivePrice returns the price to charge for this item right now:
// the discount price when one is set, otherwise the standard price.
// Pure and total over valid products; the result is what checkout snapshots
// into an order line.
func (p *Product) EffectivePrice() kernel.Money {
	if p.discountPrice != nil {
		return *p.discountPrice
	}
	return p.price
}

// IsOrderable reports whether the item may enter an order in its current status.
func (p *Product) IsOrderable() bool {
	return p.status.IsOrderable()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setDiscountPrice(discountPrice *kernel.Money) error {
	if discountPrice == nil {
		p.discountPrice = nil
		return nil
	}
	if err := discountPrice.Validate(); err != nil {
		return err
	}
	value := *discountPrice
	p.discountPrice = &value
	return nil
}

func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
