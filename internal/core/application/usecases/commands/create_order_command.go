package commands

import (
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents the submission of a drafted order.
// Carries the customer snapshot, the service variant and the pricing inputs to freeze.
//
// Example:
//
//	customer, _ := order.NewCustomer("Amal Haddad", "+961 3 123 456", "")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, "passport-regular", inputs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, calculator, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	customer  order.Customer
	variantID string
	inputs    pricing.Inputs

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
// Every invalid argument is reported in the joined error.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	variantID string,
	inputs pricing.Inputs,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setVariantID(variantID),
		cmd.setInputs(inputs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) VariantID() string {
	return c.variantID
}

func (c CreateOrderCommand) Inputs() pricing.Inputs {
	return c.inputs
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setVariantID(variantID string) error {
	if variantID == "" {
		return errs.NewValueIsRequiredError("service variant")
	}

	c.variantID = variantID
	return nil
}

func (c *CreateOrderCommand) setInputs(inputs pricing.Inputs) error {
	if err := inputs.Validate(); err != nil {
		return err
	}

	c.inputs = inputs
	return nil
}
