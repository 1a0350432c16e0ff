// Package redisstore keeps consumed serial numbers in Redis, one key per serial.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/errs"

	redis "github.com/redis/go-redis/v9"
)

const upstream = "redis"

type reservationPayload struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ConsumedAt time.Time `json:"consumed_at"`
}

// SerialStore implements SerialReservationRepository with SETNX.
type SerialStore struct {
	client *redis.Client
}

func NewSerialStore(client *redis.Client) *SerialStore {
	return &SerialStore{client: client}
}

// NewClient connects to addr. The caller owns the returned client.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Key returns the Redis key that marks number as consumed within variantID.
// The variant is length-prefixed, so ids containing ':' never share a key.
func Key(variantID, number string) string {
	return fmt.Sprintf("serial:%d:%s:%s", len(variantID), variantID, number)
}

func (s *SerialStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SerialStore) IsConsumed(ctx context.Context, variantID, number string) (bool, error) {
	n, err := s.client.Exists(ctx, Key(variantID, number)).Result()
	if err != nil {
		return false, errs.NewUpstreamUnavailableError(upstream, err)
	}
	return n > 0, nil
}

// Reserve claims the serial key. Keys never expire: a consumed serial stays consumed.
func (s *SerialStore) Reserve(ctx context.Context, reservation *serial.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(reservationPayload{
		ID:         reservation.ID().String(),
		OrderID:    reservation.OrderID().String(),
		ConsumedAt: reservation.ConsumedAt(),
	})
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, Key(reservation.VariantID(), reservation.Number()), payload, 0).Result()
	if err != nil {
		return errs.NewUpstreamUnavailableError(upstream, err)
	}
	if !ok {
		return errs.NewConflictError("serial", reservation.Number())
	}
	return nil
}
