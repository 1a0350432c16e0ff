package commands

import (
	"context"
)

// RecordPaymentCommandHandler adds an installment to an order's paid amount and
// stores the recomputed remaining balance.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory, clock Clock) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrDefault(clock),
	}
}

// Handle returns an ObjectNotFoundError if the order does not exist.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err = o.RecordPayment(cmd.Amount(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
