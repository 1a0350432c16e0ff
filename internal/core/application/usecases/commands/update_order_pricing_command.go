package commands

import (
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/guard"
)

var ErrUpdateOrderPricingCommandIsNotConstructed = errors.New(
	"UpdateOrderPricingCommand must be created via NewUpdateOrderPricingCommand constructor",
)

// UpdateOrderPricingCommand replaces the pricing inputs of an existing order.
// The total and the remaining balance are recomputed from the new inputs.
type UpdateOrderPricingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	inputs  pricing.Inputs

	guard guard.ConstructorGuard
}

func NewUpdateOrderPricingCommand(orderID kernel.UUID, inputs pricing.Inputs) (UpdateOrderPricingCommand, error) {
	cmd := UpdateOrderPricingCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(orderID.Validate(), inputs.Validate()); err != nil {
		return UpdateOrderPricingCommand{}, err
	}

	cmd.orderID = orderID
	cmd.inputs = inputs
	return cmd, nil
}

func (c UpdateOrderPricingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPricingCommandIsNotConstructed)
}

func (c UpdateOrderPricingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderPricingCommand) Inputs() pricing.Inputs {
	return c.inputs
}
