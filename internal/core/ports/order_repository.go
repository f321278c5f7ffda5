// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by identifier and status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns order.ErrHumanIDConflict when another transaction already took
	// the same human-readable identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByHumanID retrieves an order aggregate by its human-readable identifier.
	GetByHumanID(ctx context.Context, humanID order.HumanID) (*order.Order, error)

	// NextHumanID allocates the next human-readable identifier for the day of now.
	// The allocation is serialized per day within the current transaction, so two
	// concurrent checkouts on the same day never observe the same value.
	NextHumanID(ctx context.Context, now time.Time) (order.HumanID, error)

	// GetAllInNewStatusOlderThan retrieves orders still in New status whose last
	// update is before the cutoff. Used by the stale order cancellation job.
	GetAllInNewStatusOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
