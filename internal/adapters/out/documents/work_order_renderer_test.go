package documents_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"paperwork/internal/adapters/out/documents"
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var printedAt = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func newRenderer() (*documents.TextWorkOrderRenderer, *pricing.Calculator) {
	calc := pricing.NewCalculator(fees.NewEngine(catalog.Default()))
	r := documents.NewTextWorkOrderRenderer(calc, "en").
		WithIDGenerator(func() string { return "01J0000000000000000000TEST" }).
		WithClock(func() time.Time { return printedAt })
	return r, calc
}

func settlementOrder(t *testing.T, calc *pricing.Calculator) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Amal Haddad", "+961 3 123 456", "LB-1")
	require.NoError(t, err)

	engine := calc.Engine()
	sel := engine.Select(fees.Selection{}, catalog.FineLostDocument, catalog.FineLateRenewal, catalog.AddonTranslation)
	sel = engine.SetManualAmount(sel, catalog.AddonTranslation, kernel.NewMoney(250000))

	o, err := order.NewOrder(kernel.NewUUID(), customer, "passport-regular", pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(1000000),
		Quantity:         1,
		Photography:      pricing.PhotographyBiometric,
		DeliveryMode:     pricing.DeliveryOffice,
		Discount:         kernel.NewMoney(1000),
		Selection:        sel,
	}, calc, printedAt)
	require.NoError(t, err)
	require.NoError(t, o.RecordPayment(kernel.NewMoney(500000), printedAt))
	require.NoError(t, o.ChangeStatus(order.Settlement, "filed at window 4", printedAt))
	return o
}

func TestTextWorkOrderRenderer_Render(t *testing.T) {
	renderer, calc := newRenderer()
	o := settlementOrder(t, calc)

	doc, err := renderer.Render(t.Context(), o)

	require.NoError(t, err)
	assert.Equal(t, "WO-01J0000000000000000000TEST", doc.Number)
	assert.Equal(t, "text/plain; charset=utf-8", doc.ContentType)

	body := string(doc.Body)
	assert.Contains(t, body, "WORK ORDER WO-01J0000000000000000000TEST")
	assert.Contains(t, body, "Printed:  2026-04-02 09:30")
	assert.Contains(t, body, "Customer: Amal Haddad")
	assert.Contains(t, body, "Service:  passport-regular x 1")
	assert.Contains(t, body, "10,000.00")
	assert.Contains(t, body, "Lost document statutory fee")
	assert.Contains(t, body, "Certified translation")
	assert.Contains(t, body, "-10.00")
	assert.Contains(t, body, renderer.FormatMoney(o.Total()))
	assert.Contains(t, body, renderer.FormatMoney(o.Remaining()))
	assert.Contains(t, body, "[settlement] filed at window 4")
	assert.NotContains(t, body, "Processing")
}

func TestTextWorkOrderRenderer_UsesULIDByDefault(t *testing.T) {
	calc := pricing.NewCalculator(fees.NewEngine(catalog.Default()))
	renderer := documents.NewTextWorkOrderRenderer(calc, "not a locale")

	first, err := renderer.Render(t.Context(), settlementOrder(t, calc))
	require.NoError(t, err)
	second, err := renderer.Render(t.Context(), settlementOrder(t, calc))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.Number, "WO-"))
	assert.Len(t, first.Number, len("WO-")+26)
	assert.NotEqual(t, first.Number, second.Number)
}

func TestTextWorkOrderRenderer_Errors(t *testing.T) {
	renderer, calc := newRenderer()

	_, err := renderer.Render(t.Context(), &order.Order{})
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = renderer.Render(ctx, settlementOrder(t, calc))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTextWorkOrderRenderer_FormatMoney(t *testing.T) {
	renderer, _ := newRenderer()

	assert.Equal(t, "0.00", renderer.FormatMoney(kernel.Money{}))
	assert.Equal(t, "1,234.56", renderer.FormatMoney(kernel.NewMoney(123456)))
	assert.Equal(t, "-0.05", renderer.FormatMoney(kernel.NewMoney(-5)))
	assert.Equal(t, "1,000,000.00", renderer.FormatMoney(kernel.NewMoney(100000000)))
}
