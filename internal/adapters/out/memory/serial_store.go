// Package memory holds in-process adapters used when no database is configured.
package memory

import (
	"context"
	"sync"

	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/errs"
)

type serialKey struct {
	variantID string
	number    string
}

// SerialStore implements SerialReservationRepository over a mutex-guarded map.
// Reservations are lost on restart.
type SerialStore struct {
	mu       sync.RWMutex
	reserved map[serialKey]*serial.Reservation
}

func NewSerialStore() *SerialStore {
	return &SerialStore{reserved: make(map[serialKey]*serial.Reservation)}
}

func (s *SerialStore) IsConsumed(ctx context.Context, variantID, number string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errs.NewUpstreamUnavailableError("memory", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.reserved[serialKey{variantID: variantID, number: number}]
	return ok, nil
}

func (s *SerialStore) Reserve(ctx context.Context, reservation *serial.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewUpstreamUnavailableError("memory", err)
	}

	key := serialKey{variantID: reservation.VariantID(), number: reservation.Number()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.reserved[key]; taken {
		return errs.NewConflictError("serial", reservation.Number())
	}
	s.reserved[key] = reservation
	return nil
}
