package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method or restored from storage with RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Pricer computes the total for a set of pricing inputs. *pricing.Calculator implements it.
type Pricer interface {
	Total(in pricing.Inputs) kernel.Money
}

// Order represents a customer's paperwork order. It is the aggregate root that owns the
// frozen pricing inputs, the computed total, the payment balance and the status history.
//
// Order guarantees:
//   - Must have a valid unique identifier, a customer with a name and a service variant
//   - Total is always the Pricer's result for the current pricing inputs
//   - Remaining is always max(0, Total − Paid) and is recomputed with every change
//     to either side
//   - Notes are append-only
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the snapshot of the attached customer record
	customer Customer

	// variantID identifies the service variant being ordered (e.g. "passport-regular")
	variantID string

	// inputs are the pricing inputs frozen at submission
	inputs pricing.Inputs

	// total is the computed amount due, in minor units
	total kernel.Money

	// paid is the sum of recorded payments
	paid kernel.Money

	// remaining is max(0, total − paid)
	remaining kernel.Money

	// status is the current lifecycle stage
	status Status

	// notes is the admin history, oldest first
	notes []Note

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder submits a drafted order. The inputs are validated, priced with pricer and frozen
// into the order, which starts in AwaitingConfirmation with nothing paid.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customer: Customer snapshot built with NewCustomer
//   - variantID: Service variant identifier (must not be blank)
//   - inputs: Pricing inputs; every problem is reported at once
//   - pricer: Computes the total
//   - now: Creation time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors otherwise
//
// Example:
//
//	customer, _ := order.NewCustomer("Amal Haddad", "+961 3 123 456", "")
//	o, err := order.NewOrder(kernel.NewUUID(), customer, "passport-regular", inputs, calc, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customer Customer,
	variantID string,
	inputs pricing.Inputs,
	pricer Pricer,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        AwaitingConfirmation,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setVariantID(variantID),
		inputs.Validate(),
	); err != nil {
		return nil, err
	}

	o.reprice(inputs, pricer)
	return o, nil
}

// RestoreOrder rebuilds an order from storage without re-running validation or pricing.
// Remaining is derived from the stored total and paid amounts.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	variantID string,
	inputs pricing.Inputs,
	total kernel.Money,
	paid kernel.Money,
	status Status,
	notes []Note,
	createdAt time.Time,
	updatedAt time.Time,
) *Order {
	restored := make([]Note, len(notes))
	copy(restored, notes)

	return &Order{
		id:            id,
		customer:      customer,
		variantID:     variantID,
		inputs:        inputs,
		total:         total,
		paid:          paid,
		remaining:     pricing.Remaining(total, paid),
		status:        status,
		notes:         restored,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Customer() Customer { return o.customer }
func (o *Order) VariantID() string { return o.variantID }
func (o *Order) Inputs() pricing.Inputs { return o.inputs }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) Paid() kernel.Money { return o.paid }
func (o *Order) Remaining() kernel.Money { return o.remaining }
func (o *Order) Status() Status { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Notes returns a copy of the admin history, oldest first.
func (o *Order) Notes() []Note {
	out := make([]Note, len(o.notes))
	copy(out, o.notes)
	return out
}

// ChangeStatus moves the order to status.
//
// Any valid status may follow any other, including the current one. A non-blank note
// is appended to the history tagged with the new status. UpdatedAt is stamped with now.
//
// Returns:
//   - nil on success
//   - a validation error if status is not one of the lifecycle statuses
//
// Example:
//
//	if err := o.ChangeStatus(order.Settlement, "documents filed at window 4", time.Now()); err != nil {
//	    return err
//	}
func (o *Order) ChangeStatus(status Status, note string, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	if text := strings.TrimSpace(note); text != "" {
		o.notes = append(o.notes, Note{Status: status, Text: text, At: now})
	}
	o.updatedAt = now
	return nil
}

// UpdatePricing replaces the pricing inputs and recomputes total and remaining together,
// so a remaining balance computed from a previous total never survives.
func (o *Order) UpdatePricing(inputs pricing.Inputs, pricer Pricer, now time.Time) error {
	if err := inputs.Validate(); err != nil {
		return err
	}

	o.reprice(inputs, pricer)
	o.updatedAt = now
	return nil
}

// RecordPayment adds a positive installment of at most kernel.MaxAmount to the paid amount.
// Overpayment is accepted and leaves remaining at zero.
func (o *Order) RecordPayment(amount kernel.Money, now time.Time) error {
	if amount.IsNegative() || amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	if err := amount.ValidateAmount("payment amount"); err != nil {
		return err
	}

	paid, err := o.paid.CheckedAdd(amount)
	if err != nil {
		return err
	}
	o.paid = paid
	o.remaining = pricing.Remaining(o.total, o.paid)
	o.updatedAt = now
	return nil
}

func (o *Order) reprice(inputs pricing.Inputs, pricer Pricer) {
	o.inputs = inputs
	o.total = pricer.Total(inputs)
	o.remaining = pricing.Remaining(o.total, o.paid)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setVariantID trims and sets the service variant identifier.
func (o *Order) setVariantID(variantID string) error {
	variantID = strings.TrimSpace(variantID)
	if variantID == "" {
		return errs.NewValueIsRequiredError("service variant")
	}
	o.variantID = variantID
	return nil
}
