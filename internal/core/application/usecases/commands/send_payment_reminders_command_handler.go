package commands

import (
	"context"
	"errors"
	"fmt"

	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/ports"
)

// SendPaymentRemindersCommandHandler sends the payment-reminder template to customers
// of orders in awaiting-payment with something left to pay.
//
// Orders without a phone number are skipped. A failed send does not stop the batch;
// all failures are returned joined once every order was tried.
type SendPaymentRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   ports.MessageComposer
	messenger  ports.Messenger
}

func NewSendPaymentRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	composer ports.MessageComposer,
	messenger ports.Messenger,
) SendPaymentRemindersCommandHandler {
	return SendPaymentRemindersCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		messenger:  messenger,
	}
}

// Handle returns the number of reminders handed to the messenger.
func (h *SendPaymentRemindersCommandHandler) Handle(ctx context.Context, cmd SendPaymentRemindersCommand) (int, error) {
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

	orders, err := uow.OrderRepository().ListByStatus(ctx, order.AwaitingPayment)
	if err != nil {
		return 0, err
	}

	var (
		sent     int
		failures []error
	)
	for _, o := range orders {
		phone := o.Customer().Phone()
		if phone == "" || o.Remaining().IsZero() {
			continue
		}

		text, composeErr := h.composer.Compose(ports.TemplatePaymentReminder, o)
		if composeErr != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", o.ID(), composeErr))
			continue
		}

		if sendErr := h.messenger.Send(ctx, phone, text); sendErr != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", o.ID(), sendErr))
			continue
		}
		sent++
	}

	return sent, errors.Join(failures...)
}
