package commands

import (
	"context"

	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
)

// NotifyCustomerCommandHandler composes a message for an order and hands it to the
// messenger. The order is read only; nothing is written back.
type NotifyCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   ports.MessageComposer
	messenger  ports.Messenger
}

func NewNotifyCustomerCommandHandler(
	uowFactory OrderUoWFactory,
	composer ports.MessageComposer,
	messenger ports.Messenger,
) NotifyCustomerCommandHandler {
	return NotifyCustomerCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		messenger:  messenger,
	}
}

// Handle returns an ObjectNotFoundError for a missing order, a ValueIsRequiredError
// when the customer has no phone number and the messenger's error if sending failed.
func (h *NotifyCustomerCommandHandler) Handle(ctx context.Context, cmd NotifyCustomerCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	phone := o.Customer().Phone()
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	text, err := h.composer.Compose(cmd.Template(), o)
	if err != nil {
		return err
	}

	return h.messenger.Send(ctx, phone, text)
}
