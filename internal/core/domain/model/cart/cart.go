package cart

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

	// ErrCartIsEmpty is returned when checkout is attempted on a cart with no lines.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Line is one (catalog item, quantity) entry in a cart.
// Lines are unique per catalog item within a cart; quantity is always positive.
type Line struct {
	// productID identifies the catalog item
	productID kernel.UUID

	// quantity is how many units of the item the user wants (always > 0)
	quantity int

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a cart line with validation.
func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
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

// Quantity returns the number of units in the line.
func (l Line) Quantity() int {
	return l.quantity
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

// Cart is the aggregate root of a user's pre-order basket.
//
// Cart follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Holds at most one line per catalog item; adding an item again merges quantities
//   - Lines always carry positive quantities
//   - Can only be created through NewCart or RestoreCart
type Cart struct {
	// id is the unique identifier of the cart
	id kernel.UUID

	// userID is the owning user; a cart never changes owners
	userID kernel.UUID

	// lines is the set of items in the cart, unique per catalog item
	lines []Line

	// isConstructed ensures the cart was created via a constructor
	isConstructed bool
}

// NewCart creates an empty cart for a user.
func NewCart(id kernel.UUID, userID kernel.UUID) (*Cart, error) {
	return RestoreCart(id, userID, nil)
}

// RestoreCart reconstructs a cart from persistence with its current lines.
func RestoreCart(id kernel.UUID, userID kernel.UUID, lines []Line) (*Cart, error) {
	c := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setLines(lines),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}

	return nil
}

// IsEqual compares two carts by their unique identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Lines returns a copy of the cart's lines.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine puts an item into the cart. If the item is already present, the
// quantities are merged into the existing line.
func (c *Cart) AddLine(productID kernel.UUID, quantity int) error {
	line, err := NewLine(productID, quantity)
	if err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.productID.IsEqual(productID) {
			merged, mergeErr := NewLine(productID, existing.quantity+quantity)
			if mergeErr != nil {
				return mergeErr
			}
			c.lines[i] = merged
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine deletes the line for the given catalog item.
// Returns an object-not-found error if the item is not in the cart.
func (c *Cart) RemoveLine(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.productID.IsEqual(productID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

// Clear removes all lines. The cart itself stays alive for reuse.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Cart) setLines(lines []Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
	return nil
}
