package pricing

import (
	"errors"
	"fmt"

	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/pkg/errs"
)

// MaxQuantity is the largest number of documents a single order may ask for.
const MaxQuantity = 10_000

// Inputs is everything that determines an order total. It is built while an order is
// drafted and copied into the order when it is submitted.
type Inputs struct {
	VariantUnitPrice kernel.Money
	Quantity         int
	Photography      Photography
	DeliveryMode     DeliveryMode
	DeliveryFee      kernel.Money
	OtherFees        kernel.Money
	Discount         kernel.Money
	Selection        fees.Selection
}

// Validate reports every problem with the inputs at once. The calculator itself
// accepts anything; validation happens before inputs reach it. Amounts are capped
// at kernel.MaxAmount and quantity at MaxQuantity, which keeps every valid total in int64.
func (i Inputs) Validate() error {
	var quantityErr error
	switch {
	case i.Quantity < 1:
		quantityErr = errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", i.Quantity, 1, MaxQuantity,
			fmt.Errorf("%d is less than 1", i.Quantity),
		)
	case i.Quantity > MaxQuantity:
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", i.Quantity, 1, MaxQuantity)
	}

	manualErrs := make([]error, 0)
	for id, amount := range i.Selection.ManualAmounts() {
		manualErrs = append(manualErrs, amount.ValidateAmount("manual amount of "+string(id)))
	}

	return errors.Join(
		i.VariantUnitPrice.ValidateAmount("variant unit price"),
		quantityErr,
		i.Photography.Validate(),
		i.DeliveryMode.Validate(),
		i.DeliveryFee.ValidateAmount("delivery fee"),
		i.OtherFees.ValidateAmount("other fees"),
		i.Discount.ValidateAmount("discount"),
		errors.Join(manualErrs...),
	)
}
