package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order history of a single user,
// most recent first.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the given user's orders.
func NewGetOrdersQuery(userID kernel.UUID) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are listed.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrdersQueryResponse represents one order in a user's history.
type GetOrdersQueryResponse struct {
	HumanID    string
	Status     string
	TotalPrice kernel.Money
	ItemCount  int
	CreatedAt  time.Time
}
