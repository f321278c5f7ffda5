package commands

import (
	"context"
)

// RemoveCartLineCommandHandler drops lines from the user's cart.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart line removals.
// Requires a CartUoWFactory for transactional persistence.
func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command.
// Returns errs.ErrObjectNotFound when the product is not in the cart.
func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetOrCreateByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userCart.RemoveLine(cmd.ProductID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
