package commands

import (
	"context"
)

// AddCartLineCommandHandler puts catalog items into the user's cart.
// The product must exist and be orderable at the time of adding; the price is
// NOT fixed here, it is snapshotted later at checkout.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for cart line additions.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. Creates the user's cart when it does not
// exist yet and merges quantities when the product is already in the cart.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !p.IsOrderable() {
		return NewItemUnavailableError(p.ID(), p.Name())
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetOrCreateByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userCart.AddLine(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
