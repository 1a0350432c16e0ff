package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultSequencerIdleTTL is how long a client's last sequence number is kept
	// after its latest check began.
	DefaultSequencerIdleTTL = 10 * time.Minute
	// DefaultSequencerMaxClients caps the number of client keys tracked at once.
	DefaultSequencerMaxClients = 10_000
)

// ErrCheckSuperseded is returned when a check starts or finishes after a newer check
// from the same client. Its result must be discarded.
var ErrCheckSuperseded = errors.New("serial check superseded by a newer request")

// SerialCheckSequencer orders availability checks per client by request sequence
// number, not by arrival order.
//
// Key responsibilities:
//   - Rejecting checks whose sequence number is not newer than the last one seen
//   - Cancelling the context of the in-flight check a newer one replaces
//   - Telling a finished check whether its result is still the latest
//
// Business rules:
//   - Sequence numbers are chosen by the client and must grow with every keystroke
//   - Each client key is independent; two staff members never supersede each other
//   - A key is forgotten once it has been idle for the TTL, or when it is the least
//     recently used key and the client limit is reached
//
// Example usage:
//
//	ctx, finish, err := sequencer.Begin(ctx, clientKey, seq)
//	if errors.Is(err, services.ErrCheckSuperseded) {
//	    return staleResult
//	}
//	result := check(ctx)
//	if !finish() {
//	    return staleResult
//	}
//	return result
//
// SerialCheckSequencer is safe for concurrent use.
type SerialCheckSequencer struct {
	mu    sync.Mutex
	slots *expirable.LRU[string, *checkSlot]
}

type checkSlot struct {
	seq    uint64
	cancel context.CancelFunc
}

func NewSerialCheckSequencer() *SerialCheckSequencer {
	return NewSerialCheckSequencerWithLimits(DefaultSequencerMaxClients, DefaultSequencerIdleTTL)
}

// NewSerialCheckSequencerWithLimits creates a sequencer tracking at most maxClients keys,
// each for idleTTL after its latest check began.
func NewSerialCheckSequencerWithLimits(maxClients int, idleTTL time.Duration) *SerialCheckSequencer {
	if maxClients <= 0 {
		maxClients = DefaultSequencerMaxClients
	}
	if idleTTL <= 0 {
		idleTTL = DefaultSequencerIdleTTL
	}
	return &SerialCheckSequencer{slots: expirable.NewLRU[string, *checkSlot](maxClients, nil, idleTTL)}
}

// Begin registers check seq for key and returns a context that is cancelled as soon as a
// newer check for the same key begins.
//
// Returns:
//   - the check context and a finish func; finish must be called once and reports
//     whether the check is still the latest for key
//   - ErrCheckSuperseded if a check with an equal or higher seq was already seen
func (s *SerialCheckSequencer) Begin(
	ctx context.Context,
	key string,
	seq uint64,
) (context.Context, func() bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot, ok := s.slots.Peek(key); ok {
		if seq <= slot.seq {
			return nil, nil, ErrCheckSuperseded
		}
		if slot.cancel != nil {
			slot.cancel()
		}
	}

	checkCtx, cancel := context.WithCancel(ctx)
	s.slots.Add(key, &checkSlot{seq: seq, cancel: cancel})

	finish := func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()

		cancel()
		slot, ok := s.slots.Peek(key)
		if !ok {
			// Evicted while running. A newer check would have put the key back.
			return true
		}
		if slot.seq != seq {
			return false
		}
		slot.cancel = nil
		return true
	}

	return checkCtx, finish, nil
}

// Latest returns the highest sequence number seen for key.
func (s *SerialCheckSequencer) Latest(key string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots.Peek(key)
	if !ok {
		return 0, false
	}
	return slot.seq, true
}

// Tracked returns the number of client keys currently remembered.
func (s *SerialCheckSequencer) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slots.Len()
}

// Forget drops everything known about key, cancelling its in-flight check.
// Called when a client's editing session ends.
func (s *SerialCheckSequencer) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot, ok := s.slots.Peek(key); ok && slot.cancel != nil {
		slot.cancel()
	}
	s.slots.Remove(key)
}
