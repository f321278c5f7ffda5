package orderrepo

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
// A unique violation on the human id column maps to order.ErrHumanIDConflict
// so the caller can retry the allocation.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isHumanIDConflict(err) {
			return order.ErrHumanIDConflict
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Lines are immutable after
// creation, so only the order row itself is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByHumanID retrieves an order by its human-readable identifier.
func (r *GormOrderRepository) GetByHumanID(ctx context.Context, humanID order.HumanID) (*order.Order, error) {
	if err := humanID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "human_id = ?", humanID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", humanID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextHumanID allocates the next human-readable identifier for the day of now.
//
// An advisory lock keyed on the day prefix serializes allocations within the
// current transaction, so two checkouts on the same day read the current
// maximum one after another. The lock is released automatically at commit or
// rollback. The unique index on human_id stays as a backstop for sessions
// that bypass the lock.
func (r *GormOrderRepository) NextHumanID(ctx context.Context, now time.Time) (order.HumanID, error) {
	first, err := order.FirstHumanIDOfDay(now)
	if err != nil {
		return order.HumanID{}, err
	}

	db := r.db.WithContext(ctx)
	if err = db.Exec("SELECT pg_advisory_xact_lock(?)", dayLockKey(first.DayPrefix())).Error; err != nil {
		return order.HumanID{}, err
	}

	var current *string
	err = db.Raw(
		"SELECT MAX(human_id) FROM orders WHERE human_id LIKE ?",
		first.DayPrefix()+"-%",
	).Scan(&current).Error
	if err != nil {
		return order.HumanID{}, err
	}

	if current == nil {
		return first, nil
	}

	latest, err := order.ParseHumanID(*current)
	if err != nil {
		return order.HumanID{}, err
	}

	return latest.Next()
}

// GetAllInNewStatusOlderThan retrieves orders stuck in New status whose last
// update is before the cutoff.
func (r *GormOrderRepository) GetAllInNewStatusOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND updated_at < ?", int(order.New), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// dayLockKey derives a stable advisory lock key from the day prefix.
func dayLockKey(dayPrefix string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("order_human_id:" + dayPrefix))
	return int64(h.Sum64())
}

// isHumanIDConflict reports whether err is a unique violation on the order
// number index. The pq error shape depends on how the underlying connection
// was opened, so the GORM translation is checked as well.
func isHumanIDConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
