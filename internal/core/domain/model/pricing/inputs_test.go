package pricing_test

import (
	"testing"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputs_Validate(t *testing.T) {
	t.Run("valid inputs", func(t *testing.T) {
		require.NoError(t, baseInputs().Validate())
	})

	t.Run("quantity below one", func(t *testing.T) {
		in := baseInputs()
		in.Quantity = 0

		err := in.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("rejects inputs whose total would leave int64", func(t *testing.T) {
		huge := baseInputs()
		huge.VariantUnitPrice = kernel.NewMoney(1 << 62)
		huge.Quantity = 4

		many := baseInputs()
		many.Quantity = 1 << 60

		for _, in := range []pricing.Inputs{huge, many} {
			err := in.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.Contains(t, huge.Validate().Error(), "variant unit price")
		assert.Contains(t, many.Validate().Error(), "quantity")
	})

	t.Run("reports every negative amount", func(t *testing.T) {
		in := baseInputs()
		in.Discount = kernel.NewMoney(-1)
		in.DeliveryFee = kernel.NewMoney(-1)

		err := in.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "discount")
		assert.Contains(t, err.Error(), "delivery fee")
	})

	t.Run("negative manual amount", func(t *testing.T) {
		engine := fees.NewEngine(catalog.Default())
		in := baseInputs()
		in.Selection = engine.SetManualAmount(in.Selection, catalog.AddonUrgent, kernel.NewMoney(-5))

		err := in.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "manual amount of addon-urgent")
	})

	t.Run("unknown options", func(t *testing.T) {
		in := baseInputs()
		in.Photography = "polaroid"
		in.DeliveryMode = "drone"

		err := in.Validate()

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "photography")
		assert.Contains(t, err.Error(), "delivery mode")
	})
}

func TestParseOptions(t *testing.T) {
	p, err := pricing.ParsePhotography(" Biometric ")
	require.NoError(t, err)
	assert.Equal(t, pricing.PhotographyBiometric, p)

	p, err = pricing.ParsePhotography("")
	require.NoError(t, err)
	assert.Equal(t, pricing.PhotographyNone, p)

	_, err = pricing.ParsePhotography("sepia")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	m, err := pricing.ParseDeliveryMode("ADDRESS")
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryAddress, m)

	m, err = pricing.ParseDeliveryMode("")
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryOffice, m)

	_, err = pricing.ParseDeliveryMode("pigeon")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
