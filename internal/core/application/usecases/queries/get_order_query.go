// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, per the CQRS split used across the application layer.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its human-readable identifier.
// Regular users only see their own orders; operators see any order.
//
// Example:
//
//	humanID, _ := order.ParseHumanID("20250731-000042")
//	query, err := NewGetOrderQuery(humanID, actorID, false)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	humanID order.HumanID
	actorID kernel.UUID
	asAdmin bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given human-readable
// identifier on behalf of the acting user. Pass asAdmin true to skip the
// ownership check.
func NewGetOrderQuery(humanID order.HumanID, actorID kernel.UUID, asAdmin bool) (GetOrderQuery, error) {
	if err := humanID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		humanID: humanID,
		actorID: actorID,
		asAdmin: asAdmin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// HumanID returns the human-readable identifier of the requested order.
func (q GetOrderQuery) HumanID() order.HumanID {
	return q.humanID
}

// ActorID returns the identifier of the requesting user.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// AsAdmin reports whether the ownership check is skipped.
func (q GetOrderQuery) AsAdmin() bool {
	return q.asAdmin
}

// GetOrderQueryResponse represents a single order with its lines.
type GetOrderQueryResponse struct {
	OrderID    kernel.UUID
	HumanID    string
	UserID     kernel.UUID
	Status     string
	TotalPrice kernel.Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Lines      []GetOrderQueryLineResponse
}

// GetOrderQueryLineResponse represents one line of an order with its
// unit price snapshot.
type GetOrderQueryLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}
