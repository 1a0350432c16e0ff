package order_test

import (
	"math"
	"testing"
	"time"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newCalculator() *pricing.Calculator {
	return pricing.NewCalculator(fees.NewEngine(catalog.Default()))
}

func validInputs() pricing.Inputs {
	return pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(50000),
		Quantity:         2,
		Photography:      pricing.PhotographyNone,
		DeliveryMode:     pricing.DeliveryOffice,
	}
}

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer(" Amal Haddad ", "+961 3 123 456", "LB-0001")
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), "passport-regular", validInputs(), newCalculator(), createdAt)
	require.NoError(t, err)
	return o
}

func TestNewCustomer(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		c := validCustomer(t)

		assert.Equal(t, "Amal Haddad", c.Name())
		assert.Equal(t, "+961 3 123 456", c.Phone())
		assert.Equal(t, "LB-0001", c.NationalID())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := order.NewCustomer("   ", "123", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer name")
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with computed total", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, validCustomer(t), " passport-regular ", validInputs(), newCalculator(), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "passport-regular", o.VariantID())
		assert.Equal(t, order.AwaitingConfirmation, o.Status())
		assert.Equal(t, int64(100000), o.Total().Minor())
		assert.True(t, o.Paid().IsZero())
		assert.Equal(t, int64(100000), o.Remaining().Minor())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
		assert.Empty(t, o.Notes())
	})

	t.Run("should report every invalid argument", func(t *testing.T) {
		in := validInputs()
		in.Quantity = 0

		o, err := order.NewOrder(kernel.UUID{}, order.Customer{}, " ", in, newCalculator(), createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "service variant")
		assert.Contains(t, err.Error(), "quantity")
		assert.True(t, errs.IsValidation(err))
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	var nilOrder *order.Order

	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.NoError(t, newOrder(t).Validate())
}

func TestOrder_ChangeStatus(t *testing.T) {
	later := createdAt.Add(2 * time.Hour)

	t.Run("any status can follow any status", func(t *testing.T) {
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				o := newOrder(t)
				require.NoError(t, o.ChangeStatus(from, "", later))

				require.NoError(t, o.ChangeStatus(to, "", later), "%s -> %s", from, to)
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("appends a note and stamps the time", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Settlement, " filed at window 4 ", later))

		assert.Equal(t, later, o.UpdatedAt())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.Len(t, o.Notes(), 1)
		assert.Equal(t, order.Note{Status: order.Settlement, Text: "filed at window 4", At: later}, o.Notes()[0])
	})

	t.Run("blank note is not recorded", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Paid, "  ", later))

		assert.Empty(t, o.Notes())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("notes accumulate", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Returned, "missing photo", later))
		require.NoError(t, o.ChangeStatus(order.Settlement, "photo received", later.Add(time.Hour)))

		notes := o.Notes()
		require.Len(t, notes, 2)
		assert.Equal(t, order.Returned, notes[0].Status)
		assert.Equal(t, order.Settlement, notes[1].Status)
	})

	t.Run("rejects an invalid status without changes", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Unknown, "oops", later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.AwaitingConfirmation, o.Status())
		assert.Empty(t, o.Notes())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("does not touch pricing", func(t *testing.T) {
		o := newOrder(t)
		total := o.Total()

		require.NoError(t, o.ChangeStatus(order.Settlement, "", later))

		assert.True(t, total.IsEqual(o.Total()))
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	later := createdAt.Add(time.Hour)

	t.Run("installments reduce the remaining balance", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.RecordPayment(kernel.NewMoney(30000), later))
		require.NoError(t, o.RecordPayment(kernel.NewMoney(20000), later))

		assert.Equal(t, int64(50000), o.Paid().Minor())
		assert.Equal(t, int64(50000), o.Remaining().Minor())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("overpayment leaves nothing remaining", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.RecordPayment(kernel.NewMoney(150000), later))

		assert.True(t, o.Remaining().IsZero())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.RecordPayment(kernel.NewMoney(0), later), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.RecordPayment(kernel.NewMoney(-1), later), errs.ErrValueIsInvalid)
		assert.True(t, o.Paid().IsZero())
	})

	t.Run("rejects an installment above the maximum amount", func(t *testing.T) {
		o := newOrder(t)

		err := o.RecordPayment(kernel.NewMoney(1<<62), later)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, o.Paid().IsZero())
	})

	t.Run("rejects a payment that would overflow the paid amount", func(t *testing.T) {
		o := order.RestoreOrder(
			kernel.NewUUID(), validCustomer(t), "passport-regular", validInputs(),
			kernel.NewMoney(100000), kernel.NewMoney(math.MaxInt64-1), order.Paid,
			nil, createdAt, createdAt,
		)

		err := o.RecordPayment(kernel.NewMoney(2), later)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, int64(math.MaxInt64-1), o.Paid().Minor())
	})
}

func TestOrder_UpdatePricing(t *testing.T) {
	calc := newCalculator()
	later := createdAt.Add(time.Hour)

	t.Run("recomputes total and remaining together", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.RecordPayment(kernel.NewMoney(50000), later))

		in := validInputs()
		in.Selection = calc.Engine().Toggle(in.Selection, catalog.FineLostDocument)
		require.NoError(t, o.UpdatePricing(in, calc, later))

		assert.Equal(t, int64(112000), o.Total().Minor())
		assert.Equal(t, int64(62000), o.Remaining().Minor())
		assert.True(t, o.Inputs().Selection.Has(catalog.AddonFineHandling))
	})

	t.Run("invalid inputs leave the order unchanged", func(t *testing.T) {
		o := newOrder(t)
		in := validInputs()
		in.Discount = kernel.NewMoney(-10)

		err := o.UpdatePricing(in, calc, later)

		require.Error(t, err)
		assert.Equal(t, int64(100000), o.Total().Minor())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	notes := []order.Note{{Status: order.Paid, Text: "cash", At: createdAt}}

	o := order.RestoreOrder(id, validCustomer(t), "id-card", validInputs(),
		kernel.NewMoney(112000), kernel.NewMoney(50000), order.Paid, notes, createdAt, createdAt)

	require.NoError(t, o.Validate())
	assert.Equal(t, int64(62000), o.Remaining().Minor())
	assert.Equal(t, order.Paid, o.Status())

	notes[0].Text = "changed by caller"
	assert.Equal(t, "cash", o.Notes()[0].Text)
}

func TestOrder_IsEqual(t *testing.T) {
	a := newOrder(t)
	b := newOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
