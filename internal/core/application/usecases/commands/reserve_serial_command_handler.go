package commands

import (
	"context"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/core/ports"
)

// ReserveSerialCommandHandler links a serial to an existing order.
//
// The availability check shown while staff type is advisory; this handler does not
// repeat it. Exclusivity comes from the store's atomic Reserve, so of two concurrent
// reservations of one serial exactly one wins and the other gets a ConflictError.
type ReserveSerialCommandHandler struct {
	uowFactory   OrderUoWFactory
	reservations ports.SerialReservationRepository
	clock        Clock
}

func NewReserveSerialCommandHandler(
	uowFactory OrderUoWFactory,
	reservations ports.SerialReservationRepository,
	clock Clock,
) ReserveSerialCommandHandler {
	return ReserveSerialCommandHandler{
		uowFactory:   uowFactory,
		reservations: reservations,
		clock:        clockOrDefault(clock),
	}
}

// Handle returns an ObjectNotFoundError if the order does not exist, a ConflictError
// if the serial is taken and an UpstreamUnavailableError if the store failed.
func (h *ReserveSerialCommandHandler) Handle(ctx context.Context, cmd ReserveSerialCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	reservation, err := serial.NewReservation(kernel.NewUUID(), cmd.OrderID(), cmd.VariantID(), cmd.Number(), h.clock())
	if err != nil {
		return err
	}

	if err = h.reservations.Reserve(ctx, reservation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
