package commands

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
)

// checkoutMaxAttempts bounds the retries taken when the allocated order number
// collides with a concurrent checkout on the same day.
const checkoutMaxAttempts = 3

// CheckoutResult describes the order produced by a successful checkout.
type CheckoutResult struct {
	OrderID    kernel.UUID
	HumanID    order.HumanID
	Status     order.Status
	TotalPrice kernel.Money
}

// CheckoutCommandHandler converts the user's cart into an order. The whole
// conversion runs in one transaction: availability checks, price snapshotting,
// order number allocation, order persistence and cart clearing either all
// succeed or all roll back.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	cmd, _ := NewCheckoutCommand(userID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// result.HumanID is the customer-facing order number
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for cart checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
//
// Postgres aborts the transaction on a unique violation, so losing the order
// number race means starting over with a fresh unit of work. The retry re-runs
// the full checkout, cart locking included, and gives up with
// ErrAllocationConflict after checkoutMaxAttempts losses.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	for attempt := 0; attempt < checkoutMaxAttempts; attempt++ {
		result, err := h.checkout(ctx, cmd)
		if errors.Is(err, order.ErrHumanIDConflict) {
			continue
		}
		return result, err
	}

	return CheckoutResult{}, ErrAllocationConflict
}

func (h *CheckoutCommandHandler) checkout(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetOrCreateByUser(ctx, cmd.UserID())
	if err != nil {
		return CheckoutResult{}, err
	}

	// Serialize concurrent checkouts of this cart, then re-read the contents
	// so the snapshot reflects whatever the previous holder committed.
	if err = cartRepo.LockForCheckout(ctx, userCart.ID()); err != nil {
		return CheckoutResult{}, err
	}
	userCart, err = cartRepo.GetOrCreateByUser(ctx, cmd.UserID())
	if err != nil {
		return CheckoutResult{}, err
	}

	if userCart.IsEmpty() {
		return CheckoutResult{}, cart.ErrCartIsEmpty
	}

	orderLines, err := h.snapshotLines(ctx, uow.ProductRepository(), userCart.Lines())
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now()
	orderRepo := uow.OrderRepository()
	humanID, err := orderRepo.NextHumanID(ctx, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), humanID, cmd.UserID(), orderLines, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	userCart.Clear()
	if err = cartRepo.Update(ctx, userCart); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderID:    newOrder.ID(),
		HumanID:    newOrder.HumanID(),
		Status:     newOrder.Status(),
		TotalPrice: newOrder.TotalPrice(),
	}, nil
}

// snapshotLines turns cart lines into order lines, checking availability and
// fixing each line's unit price at the product's current effective price.
func (h *CheckoutCommandHandler) snapshotLines(
	ctx context.Context,
	productRepo ports.ProductRepository,
	cartLines []cart.Line,
) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(cartLines))
	for _, line := range cartLines {
		ids = append(ids, line.ProductID())
	}

	products, err := productRepo.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	orderLines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		p, ok := byID[cartLine.ProductID()]
		if !ok {
			return nil, NewItemUnavailableError(cartLine.ProductID(), "")
		}
		if !p.IsOrderable() {
			return nil, NewItemUnavailableError(p.ID(), p.Name())
		}

		orderLine, err := order.NewLine(p.ID(), cartLine.Quantity(), p.EffectivePrice())
		if err != nil {
			return nil, err
		}
		orderLines = append(orderLines, orderLine)
	}

	return orderLines, nil
}
