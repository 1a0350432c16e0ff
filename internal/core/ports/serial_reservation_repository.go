package ports

import (
	"context"

	"paperwork/internal/core/domain/model/serial"
)

// SerialReservationRepository is the store of consumed form serials.
//
// Implementations must make Reserve a single atomic conditional write (a unique
// constraint, SETNX or a compare-and-swap): two concurrent reservations of the same
// serial in the same variant yield exactly one success and one ConflictError.
type SerialReservationRepository interface {
	// IsConsumed reports whether number is already consumed within variantID.
	// The answer is advisory and may be stale by the time Reserve is called.
	IsConsumed(ctx context.Context, variantID, number string) (bool, error)

	// Reserve stores reservation if its (variant, number) pair is still free.
	// Returns an errs.ConflictError otherwise and leaves the store unchanged.
	Reserve(ctx context.Context, reservation *serial.Reservation) error
}
