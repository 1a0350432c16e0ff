package commands

import (
	"context"

	"paperwork/internal/core/domain/model/order"
)

// CreateOrderCommandHandler prices a submitted order and persists it in
// awaiting-confirmation status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, calculator, time.Now)
//	cmd, _ := NewCreateOrderCommand(orderID, customer, "id-card", inputs)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     order.Pricer
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// A nil clock means time.Now.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricer order.Pricer, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		clock:      clockOrDefault(clock),
	}
}

// Handle processes the order creation command.
// The total is computed once here from the frozen inputs; the order and its total are
// stored in the same transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.VariantID(), cmd.Inputs(), h.pricer, h.clock())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
