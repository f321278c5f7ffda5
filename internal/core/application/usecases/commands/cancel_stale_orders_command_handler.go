package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels orders that stayed in New status
// past the allowed confirmation window. Runs on a schedule from the job layer.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every order still in New status whose last update is older
// than the command's max age. Returns the number of cancelled orders.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetAllInNewStatusOlderThan(ctx, now.Add(-cmd.MaxAge()))
	if err != nil {
		return 0, err
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.ChangeStatus(order.Cancelled, now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
