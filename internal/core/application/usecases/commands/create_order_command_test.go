package commands_test

import (
	"testing"

	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, newCustomer("123"), "id-card", validInputs())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Amal Haddad", cmd.Customer().Name())
	assert.Equal(t, "id-card", cmd.VariantID())
	assert.Equal(t, 2, cmd.Inputs().Quantity)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, newCustomer("123"), "id-card", validInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Customer{}, "id-card", validInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customer name")
}

func TestNewCreateOrderCommand_InvalidInputs(t *testing.T) {
	in := validInputs()
	in.Quantity = 0

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newCustomer("123"), "", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service variant")
	assert.Contains(t, err.Error(), "quantity")
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
