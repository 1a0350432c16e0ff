package commands

import (
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/guard"
)

var ErrNotifyCustomerCommandIsNotConstructed = errors.New(
	"NotifyCustomerCommand must be created via NewNotifyCustomerCommand constructor",
)

// NotifyCustomerCommand sends a templated text message to the customer of an order.
type NotifyCustomerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	template ports.MessageTemplate

	guard guard.ConstructorGuard
}

func NewNotifyCustomerCommand(orderID kernel.UUID, template ports.MessageTemplate) (NotifyCustomerCommand, error) {
	var templateErr error
	if template == "" {
		templateErr = errs.NewValueIsRequiredError("message template")
	}

	if err := errors.Join(orderID.Validate(), templateErr); err != nil {
		return NotifyCustomerCommand{}, err
	}

	return NotifyCustomerCommand{
		orderID:  orderID,
		template: template,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c NotifyCustomerCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCustomerCommandIsNotConstructed)
}

func (c NotifyCustomerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c NotifyCustomerCommand) Template() ports.MessageTemplate {
	return c.template
}
