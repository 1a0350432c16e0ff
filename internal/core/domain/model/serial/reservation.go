package serial

import (
	"errors"
	"strings"
	"time"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/pkg/errs"
)

const (
	// ReasonInUse is reported when the serial is already consumed for the variant.
	ReasonInUse = "serial already in use"

	// ReasonCheckFailed is reported when the store could not answer in time.
	// The check fails closed: the serial is reported as unavailable.
	ReasonCheckFailed = "check failed"
)

// ErrReservationIsNotConstructed is returned when validating a zero-value Reservation.
var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation constructor")

// Availability is the answer to an availability check.
type Availability struct {
	Available bool
	Reason    string
}

// Free is the answer for a serial nobody consumed yet.
func Free() Availability {
	return Availability{Available: true}
}

// InUse is the answer for a consumed serial.
func InUse() Availability {
	return Availability{Reason: ReasonInUse}
}

// CheckFailed is the fail-closed answer used when the store errors or times out.
func CheckFailed() Availability {
	return Availability{Reason: ReasonCheckFailed}
}

// Reservation links a pre-printed form serial to the order that consumed it.
//
// A serial is unique within its service variant; the same number may appear under
// another variant. Reservations are created consumed and never released.
type Reservation struct {
	id         kernel.UUID
	orderID    kernel.UUID
	variantID  string
	number     string
	consumedAt time.Time

	isConstructed bool
}

// NormalizeNumber trims the serial and upper-cases it so that "ab-1001 " and "AB-1001"
// name the same form.
func NormalizeNumber(number string) (string, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return "", errs.NewValueIsRequiredError("serial number")
	}
	return number, nil
}

// NormalizeVariant trims the service variant id.
func NormalizeVariant(variantID string) (string, error) {
	variantID = strings.TrimSpace(variantID)
	if variantID == "" {
		return "", errs.NewValueIsRequiredError("service variant")
	}
	return variantID, nil
}

// NewReservation builds a consumed reservation of number for orderID.
func NewReservation(id, orderID kernel.UUID, variantID, number string, now time.Time) (*Reservation, error) {
	variantID, variantErr := NormalizeVariant(variantID)
	number, numberErr := NormalizeNumber(number)
	if err := errors.Join(id.Validate(), orderID.Validate(), variantErr, numberErr); err != nil {
		return nil, err
	}

	return &Reservation{
		id:            id,
		orderID:       orderID,
		variantID:     variantID,
		number:        number,
		consumedAt:    now,
		isConstructed: true,
	}, nil
}

// RestoreReservation rebuilds a reservation from storage.
func RestoreReservation(id, orderID kernel.UUID, variantID, number string, consumedAt time.Time) *Reservation {
	return &Reservation{
		id:            id,
		orderID:       orderID,
		variantID:     variantID,
		number:        number,
		consumedAt:    consumedAt,
		isConstructed: true,
	}
}

func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

func (r *Reservation) ID() kernel.UUID { return r.id }
func (r *Reservation) OrderID() kernel.UUID { return r.orderID }
func (r *Reservation) VariantID() string { return r.variantID }
func (r *Reservation) Number() string { return r.number }
func (r *Reservation) Consumed() bool { return true }
func (r *Reservation) ConsumedAt() time.Time { return r.consumedAt }
