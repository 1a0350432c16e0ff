package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler applies a staff-initiated status change as one
// atomic update: status, optional note and update timestamp are saved together.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Cancelled, "customer withdrew")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Order does not exist
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrDefault(clock),
	}
}

// Handle returns an ObjectNotFoundError if the order does not exist.
// Every other transition succeeds.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.ChangeStatus(cmd.Status(), cmd.Note(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
