package cartrepo

import (
	"context"
	"errors"
	"hash/fnv"

	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreateByUser retrieves the user's cart, creating an empty one when the
// user does not have a cart yet.
func (r *GormCartRepository) GetOrCreateByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "user_id = ?", userID.Bytes()).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	aggregate, err := cart.NewCart(kernel.NewUUID(), userID)
	if err != nil {
		return nil, err
	}

	dto = fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Update persists the cart's current set of lines. The lines are replaced
// wholesale: the set is small and this keeps adds, merges, removals and
// clearing in one code path.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Where("cart_id = ?", dto.ID).Delete(&CartLineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// LockForCheckout takes a transaction-scoped advisory lock on the cart so
// concurrent checkouts of the same cart run one at a time. The lock is
// released automatically at commit or rollback.
func (r *GormCartRepository) LockForCheckout(ctx context.Context, cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", cartLockKey(cartID)).Error
}

// cartLockKey derives a stable advisory lock key from the cart id.
func cartLockKey(cartID kernel.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("cart_checkout:" + cartID.String()))
	return int64(h.Sum64())
}
