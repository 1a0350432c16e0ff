package commands

import (
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to another lifecycle status, optionally
// recording an admin note.
//
// Example:
//
//	status, err := order.ParseStatus("settlement")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewChangeOrderStatusCommand(orderID, status, "filed at window 4")
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order id and the target status.
// Any valid status is accepted regardless of the order's current status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status, note string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	cmd.note = note
	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}
