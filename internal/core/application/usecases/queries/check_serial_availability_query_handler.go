package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/core/domain/services"
	"paperwork/internal/core/ports"
)

// DefaultSerialCheckTimeout bounds a single availability lookup.
const DefaultSerialCheckTimeout = 2 * time.Second

// CheckSerialAvailabilityQueryHandler answers availability checks against the
// reservation store.
//
// The lookup runs under a timeout. Any store error, timeout included, fails closed:
// the serial is reported unavailable with reason "check failed" and the caller may
// ask again. A check overtaken by a newer one from the same client is cancelled and
// its answer is flagged Superseded.
type CheckSerialAvailabilityQueryHandler struct {
	reservations ports.SerialReservationRepository
	sequencer    *services.SerialCheckSequencer
	timeout      time.Duration
	logger       *slog.Logger
}

// NewCheckSerialAvailabilityQueryHandler creates the handler. A non-positive timeout
// means DefaultSerialCheckTimeout; a nil sequencer disables ordering.
func NewCheckSerialAvailabilityQueryHandler(
	reservations ports.SerialReservationRepository,
	sequencer *services.SerialCheckSequencer,
	timeout time.Duration,
	logger *slog.Logger,
) CheckSerialAvailabilityQueryHandler {
	if timeout <= 0 {
		timeout = DefaultSerialCheckTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return CheckSerialAvailabilityQueryHandler{
		reservations: reservations,
		sequencer:    sequencer,
		timeout:      timeout,
		logger:       logger.With("component", "SerialAvailabilityCheck"),
	}
}

// Handle never returns a store error; only an unconstructed query is an error.
func (h CheckSerialAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckSerialAvailabilityQuery,
) (CheckSerialAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckSerialAvailabilityQueryResponse{}, err
	}

	resp := CheckSerialAvailabilityQueryResponse{Seq: query.Seq()}

	finish := func() bool { return true }
	if h.sequencer != nil && query.Seq() > 0 {
		checkCtx, done, err := h.sequencer.Begin(ctx, query.ClientKey(), query.Seq())
		if errors.Is(err, services.ErrCheckSuperseded) {
			resp.Availability = serial.CheckFailed()
			resp.Superseded = true
			return resp, nil
		}
		ctx, finish = checkCtx, done
	}

	resp.Availability = h.lookup(ctx, query)
	if !finish() {
		resp.Superseded = true
	}
	return resp, nil
}

func (h CheckSerialAvailabilityQueryHandler) lookup(ctx context.Context, query CheckSerialAvailabilityQuery) serial.Availability {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	type answer struct {
		consumed bool
		err      error
	}
	answers := make(chan answer, 1)
	go func() {
		consumed, err := h.reservations.IsConsumed(ctx, query.VariantID(), query.Number())
		answers <- answer{consumed: consumed, err: err}
	}()

	var got answer
	select {
	case <-ctx.Done():
		got.err = ctx.Err()
	case got = <-answers:
	}

	if got.err != nil {
		h.logger.WarnContext(ctx, "serial availability check failed",
			"variant", query.VariantID(), "serial", query.Number(), "error", got.err)
		return serial.CheckFailed()
	}
	if got.consumed {
		return serial.InUse()
	}
	return serial.Free()
}
