package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order details straight from the database.
// Ownership is enforced here rather than in the router so that a foreign
// order number is indistinguishable from a missing one.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound both when the
// order does not exist and when it belongs to another user.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		ID         uuid.UUID
		HumanID    string
		UserID     uuid.UUID
		TotalPrice decimal.Decimal
		Status     int
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			human_id,
			user_id,
			total_price,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE human_id = ?
	`, query.HumanID().String()).Scan(&row).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if row.HumanID == "" {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.HumanID().String())
	}

	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !query.AsAdmin() && !userID.IsEqual(query.ActorID()) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.HumanID().String())
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	totalPrice, err := kernel.NewMoney(row.TotalPrice)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, row.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderID:    orderID,
		HumanID:    row.HumanID,
		UserID:     userID,
		Status:     order.Status(row.Status).String(),
		TotalPrice: totalPrice,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		Lines:      lines,
	}, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID uuid.UUID) ([]GetOrderQueryLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetOrderQueryLineResponse, 0)
	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var unitPrice decimal.Decimal

		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		lines = append(lines, GetOrderQueryLineResponse{
			ProductID: id,
			Quantity:  quantity,
			UnitPrice: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
