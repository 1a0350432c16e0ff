package commands

import (
	"errors"
	"fmt"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand records one payment installment against an order.
//
// Example:
//
//	amount, _ := kernel.ParseMajor("250.00")
//	cmd, err := NewRecordPaymentCommand(orderID, amount)
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand validates that the order id is set and the amount is positive
// and at most kernel.MaxAmount.
func NewRecordPaymentCommand(orderID kernel.UUID, amount kernel.Money) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{guard: guard.NewConstructorGuard()}

	var amountErr error
	if amount.IsNegative() || amount.IsZero() {
		amountErr = errs.NewValueIsInvalidErrorWithCause(
			"payment amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	} else {
		amountErr = amount.ValidateAmount("payment amount")
	}

	if err := errors.Join(orderID.Validate(), amountErr); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.orderID = orderID
	cmd.amount = amount
	return cmd, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}
