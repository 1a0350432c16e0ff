package commands

import (
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/guard"
)

var ErrReserveSerialCommandIsNotConstructed = errors.New(
	"ReserveSerialCommand must be created via NewReserveSerialCommand constructor",
)

// ReserveSerialCommand consumes a pre-printed form serial for an order.
//
// Example:
//
//	cmd, err := NewReserveSerialCommand(orderID, "passport-regular", "AB-1001")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // serial already in use, staff picks another form
//	}
type ReserveSerialCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	variantID string
	number    string

	guard guard.ConstructorGuard
}

// NewReserveSerialCommand normalizes the variant id and serial number.
func NewReserveSerialCommand(orderID kernel.UUID, variantID, number string) (ReserveSerialCommand, error) {
	variantID, variantErr := serial.NormalizeVariant(variantID)
	number, numberErr := serial.NormalizeNumber(number)

	if err := errors.Join(orderID.Validate(), variantErr, numberErr); err != nil {
		return ReserveSerialCommand{}, err
	}

	return ReserveSerialCommand{
		orderID:   orderID,
		variantID: variantID,
		number:    number,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReserveSerialCommand) Validate() error {
	return c.guard.Validate(ErrReserveSerialCommandIsNotConstructed)
}

func (c ReserveSerialCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReserveSerialCommand) VariantID() string {
	return c.variantID
}

func (c ReserveSerialCommand) Number() string {
	return c.number
}
