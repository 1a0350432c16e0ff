package queries

import (
	"errors"

	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/guard"
)

var ErrCheckSerialAvailabilityQueryIsNotConstructed = errors.New(
	"CheckSerialAvailabilityQuery must be created via NewCheckSerialAvailabilityQuery constructor",
)

// CheckSerialAvailabilityQuery asks whether a serial is still free within a service
// variant. The answer is advisory; only reserving the serial makes it exclusive.
//
// ClientKey and Seq are optional. When Seq is non-zero, checks from the same client are
// ordered by Seq and the answer to a superseded check is flagged so the desk drops it.
//
// Example:
//
//	query, err := NewCheckSerialAvailabilityQuery("passport-regular", "AB-1001", "desk-3", 17)
//	resp, err := handler.Handle(ctx, query)
//	if resp.Superseded {
//	    return // a newer keystroke already asked
//	}
type CheckSerialAvailabilityQuery struct {
	variantID string
	number    string
	clientKey string
	seq       uint64

	guard guard.ConstructorGuard
}

func NewCheckSerialAvailabilityQuery(
	variantID, number, clientKey string,
	seq uint64,
) (CheckSerialAvailabilityQuery, error) {
	variantID, variantErr := serial.NormalizeVariant(variantID)
	number, numberErr := serial.NormalizeNumber(number)
	if err := errors.Join(variantErr, numberErr); err != nil {
		return CheckSerialAvailabilityQuery{}, err
	}

	return CheckSerialAvailabilityQuery{
		variantID: variantID,
		number:    number,
		clientKey: clientKey,
		seq:       seq,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q CheckSerialAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckSerialAvailabilityQueryIsNotConstructed)
}

func (q CheckSerialAvailabilityQuery) VariantID() string { return q.variantID }
func (q CheckSerialAvailabilityQuery) Number() string { return q.number }
func (q CheckSerialAvailabilityQuery) ClientKey() string { return q.clientKey }
func (q CheckSerialAvailabilityQuery) Seq() uint64 { return q.seq }

// CheckSerialAvailabilityQueryResponse is the advisory answer.
type CheckSerialAvailabilityQueryResponse struct {
	serial.Availability
	Seq        uint64
	Superseded bool
}
