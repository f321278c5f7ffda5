package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoLines is returned when an order would be created without lines.
	// Checkout of an empty cart must be rejected before reaching this point, so
	// seeing this error indicates a workflow bug rather than user input.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrNotOwner is returned when an actor attempts an owner-scoped operation
	// on an order that belongs to someone else.
	ErrNotOwner = errors.New("order does not belong to the requesting user")

	// ErrHumanIDConflict is returned by persistence when inserting an order
	// loses the uniqueness race on its human identifier. Transient; the whole
	// checkout is safe to retry.
	ErrHumanIDConflict = errors.New("order human id is already taken")
)

// Order represents a customer order in the system. It is the aggregate root
// holding the financial snapshot taken at checkout: once created, its identity,
// owner, lines, and total never change. Only the status moves, and only along
// the edges the Status state machine allows.
//
// Order follows these invariants:
//   - Must have valid unique and human-readable identifiers and a valid owner
//   - Contains at least one line, unique per catalog item
//   - totalPrice equals the sum of line totals, computed once at creation
//   - Status transitions follow the central transition table
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the surrogate unique identifier
	id kernel.UUID

	// humanID is the day-scoped sequential display identifier
	humanID HumanID

	// userID is the owning user; never changes
	userID kernel.UUID

	// lines are the price snapshots taken at creation; never mutated
	lines []Line

	// totalPrice is the stored sum of line totals; never recomputed
	totalPrice kernel.Money

	// status is the only mutable field, governed by the state machine
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is bumped on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order from checkout inputs. The lines must already carry
// their unit price snapshots; the total is computed here, exactly once, and
// stored for the lifetime of the order.
//
// Returns ErrOrderHasNoLines when lines is empty and a validation error when
// any identifier or line is invalid or a catalog item appears twice.
func NewOrder(
	id kernel.UUID,
	humanID HumanID,
	userID kernel.UUID,
	lines []Line,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHumanID(humanID),
		o.setUserID(userID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	o.totalPrice = total

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total price
// is taken as-is: it is the snapshot taken at creation and must never be
// recomputed from the catalog.
func RestoreOrder(
	id kernel.UUID,
	humanID HumanID,
	userID kernel.UUID,
	lines []Line,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHumanID(humanID),
		o.setUserID(userID),
		o.setLines(lines),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// HumanID returns the day-scoped sequential display identifier.
func (o *Order) HumanID() HumanID {
	return o.humanID
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Lines returns a copy of the order's lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// ItemCount returns the number of lines in the order.
func (o *Order) ItemCount() int {
	return len(o.lines)
}

// TotalPrice returns the stored total computed at creation.
// It is never derived from current catalog prices.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// ChangeStatus moves the order along one edge of the status graph.
// On success the status is set and updatedAt bumped; no other field changes.
// Illegal edges fail with *InvalidTransitionError and leave the order intact.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Confirm performs the owner-scoped New -> Pending transition.
//
// Returns ErrNotOwner when the actor does not own the order, and an
// *InvalidTransitionError when the order is not in New status.
func (o *Order) Confirm(actorID kernel.UUID, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !o.IsOwnedBy(actorID) {
		return ErrNotOwner
	}

	return o.ChangeStatus(Pending, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setHumanID(humanID HumanID) error {
	if err := humanID.Validate(); err != nil {
		return err
	}
	o.humanID = humanID
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("catalog item %s appears more than once", line.ProductID()),
			)
		}
		seen[line.ProductID()] = struct{}{}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
