package commands

import (
	"context"

	"paperwork/internal/core/domain/model/order"
)

// UpdateOrderPricingCommandHandler reprices an order inside one transaction so that
// the stored total and remaining balance always belong to the stored inputs.
type UpdateOrderPricingCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     order.Pricer
	clock      Clock
}

func NewUpdateOrderPricingCommandHandler(
	uowFactory OrderUoWFactory,
	pricer order.Pricer,
	clock Clock,
) UpdateOrderPricingCommandHandler {
	return UpdateOrderPricingCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		clock:      clockOrDefault(clock),
	}
}

// Handle loads the order, applies the new inputs and saves it.
// Returns an ObjectNotFoundError if the order does not exist.
func (h *UpdateOrderPricingCommandHandler) Handle(ctx context.Context, cmd UpdateOrderPricingCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdatePricing(cmd.Inputs(), h.pricer, h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
