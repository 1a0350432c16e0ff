package commands

import (
	"errors"

	"paperwork/internal/pkg/guard"
)

var ErrSendPaymentRemindersCommandIsNotConstructed = errors.New(
	"SendPaymentRemindersCommand must be created via NewSendPaymentRemindersCommand constructor",
)

// SendPaymentRemindersCommand reminds every customer whose order awaits payment and
// still has a remaining balance.
type SendPaymentRemindersCommand struct {
	guard guard.ConstructorGuard
}

func NewSendPaymentRemindersCommand() SendPaymentRemindersCommand {
	return SendPaymentRemindersCommand{guard: guard.NewConstructorGuard()}
}

func (c SendPaymentRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendPaymentRemindersCommandIsNotConstructed)
}
