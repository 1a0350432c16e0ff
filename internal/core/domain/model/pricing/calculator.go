package pricing

import (
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
)

// Calculator composes an order total from pricing inputs.
type Calculator struct {
	engine *fees.Engine
}

func NewCalculator(engine *fees.Engine) *Calculator {
	return &Calculator{engine: engine}
}

// Engine returns the fee engine the calculator prices selections with.
func (c *Calculator) Engine() *fees.Engine {
	return c.engine
}

// Total computes the order total:
//
//  1. variant unit price × quantity
//  2. + photography surcharge
//  3. + delivery fee when delivering to an address
//  4. + visible fines + hidden fine surcharge + lost-report service amount
//  5. + manual add-ons + fine-handling add-on
//  6. + other fees
//  7. − discount
//  8. clamped at zero, once, at the very end
//
// Total is deterministic and never negative.
func (c *Calculator) Total(in Inputs) kernel.Money {
	return c.Quote(in).Total
}

// Quote is a priced draft: the total together with the amounts it is made of.
type Quote struct {
	Base            kernel.Money
	Photography     kernel.Money
	Delivery        kernel.Money
	VisibleFines    kernel.Money
	HiddenSurcharge kernel.Money
	LostReport      kernel.Money
	ManualAddons    kernel.Money
	FineHandling    kernel.Money
	OtherFees       kernel.Money
	Discount        kernel.Money
	MandatoryFees   kernel.Money

	// Lines is the customer-facing fee breakdown; see fees.Engine.Lines.
	Lines []fees.Line

	// Unclamped is the sum before the final clamp. It is negative when the
	// discount exceeds everything else.
	Unclamped kernel.Money
	Total     kernel.Money
}

// Quote prices in and returns every intermediate amount.
func (c *Calculator) Quote(in Inputs) Quote {
	sel := in.Selection
	q := Quote{
		Base:            in.VariantUnitPrice.Times(in.Quantity),
		Photography:     in.Photography.Surcharge(),
		VisibleFines:    c.engine.VisibleFinesTotal(sel),
		HiddenSurcharge: c.engine.HiddenFineSurcharge(sel),
		LostReport:      c.engine.LostReportServiceAmount(sel),
		ManualAddons:    c.engine.ManualAddonsTotal(sel),
		FineHandling:    c.engine.FineHandlingAddonAmount(sel),
		OtherFees:       in.OtherFees,
		Discount:        in.Discount,
		MandatoryFees:   c.engine.MandatoryFeeAmount(sel),
		Lines:           c.engine.Lines(sel),
	}
	if in.DeliveryMode == DeliveryAddress {
		q.Delivery = in.DeliveryFee
	}

	sum := q.Base
	sum = sum.Add(q.Photography)
	sum = sum.Add(q.Delivery)
	sum = sum.Add(q.VisibleFines).Add(q.HiddenSurcharge).Add(q.LostReport)
	sum = sum.Add(q.ManualAddons).Add(q.FineHandling)
	sum = sum.Add(q.OtherFees)
	sum = sum.Sub(q.Discount)

	q.Unclamped = sum
	q.Total = sum.ClampZero()
	return q
}

// Remaining is what is still owed: max(0, total − paid). Overpayment never turns
// into a negative balance.
func Remaining(total, paid kernel.Money) kernel.Money {
	return total.Sub(paid).ClampZero()
}
