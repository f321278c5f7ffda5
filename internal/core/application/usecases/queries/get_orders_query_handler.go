package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists a user's orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned most recent first; the item
// count sums the quantities of each order's lines.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.human_id,
			o.status,
			o.total_price,
			COALESCE(SUM(l.quantity), 0) AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.human_id DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var humanID string
		var status int
		var totalPrice decimal.Decimal
		var itemCount int
		var createdAt time.Time

		if err = rows.Scan(&humanID, &status, &totalPrice, &itemCount, &createdAt); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoney(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		orders = append(orders, GetOrdersQueryResponse{
			HumanID:    humanID,
			Status:     order.Status(status).String(),
			TotalPrice: price,
			ItemCount:  itemCount,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
