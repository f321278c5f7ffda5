package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAdminStatisticsQueryHandler computes storewide order statistics.
//
// Today's orders are counted by the day prefix of the order number rather
// than created_at, so the count always agrees with the numbering sequence.
type GetAdminStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatisticsQueryHandler creates a handler for storewide statistics queries.
// Requires a GORM database connection for query execution.
func NewGetAdminStatisticsQueryHandler(db *gorm.DB) GetAdminStatisticsQueryHandler {
	return GetAdminStatisticsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAdminStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatisticsQuery,
) (GetAdminStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatisticsQueryResponse{}, err
	}

	today, err := order.FirstHumanIDOfDay(query.Now())
	if err != nil {
		return GetAdminStatisticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS order_count,
			COALESCE(SUM(total_price) FILTER (WHERE status = ?), 0) AS revenue,
			COUNT(*) FILTER (WHERE human_id LIKE ?) AS today_count
		FROM orders
		GROUP BY status
	`, int(order.Completed), today.DayPrefix()+"-%").Rows()
	if err != nil {
		return GetAdminStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetAdminStatisticsQueryResponse{
		OrdersByStatus: make(map[string]int),
		Revenue:        kernel.ZeroMoney(),
	}

	for rows.Next() {
		var status, orderCount, todayCount int
		var revenue decimal.Decimal

		if err = rows.Scan(&status, &orderCount, &revenue, &todayCount); err != nil {
			return GetAdminStatisticsQueryResponse{}, err
		}

		response.TotalOrders += orderCount
		response.OrdersToday += todayCount
		response.OrdersByStatus[order.Status(status).String()] = orderCount

		revenueMoney, moneyErr := kernel.NewMoney(revenue)
		if moneyErr != nil {
			return GetAdminStatisticsQueryResponse{}, moneyErr
		}
		response.Revenue = response.Revenue.Add(revenueMoney)
	}

	if err = rows.Err(); err != nil {
		return GetAdminStatisticsQueryResponse{}, err
	}

	return response, nil
}
