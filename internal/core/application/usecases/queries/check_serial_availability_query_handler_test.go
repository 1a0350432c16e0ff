package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckSerialAvailabilityQueryHandler_Handle(t *testing.T) {
	t.Run("free serial", func(t *testing.T) {
		store := new(MockSerialReservationRepository)
		store.On("IsConsumed", mock.Anything, "passport-regular", "AB-1001").Return(false, nil).Once()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, nil, time.Second, nil)

		query, err := queries.NewCheckSerialAvailabilityQuery(" passport-regular", "ab-1001 ", "", 0)
		require.NoError(t, err)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Empty(t, resp.Reason)
		assert.False(t, resp.Superseded)
	})

	t.Run("consumed serial", func(t *testing.T) {
		store := new(MockSerialReservationRepository)
		store.On("IsConsumed", mock.Anything, "passport-regular", "AB-1001").Return(true, nil).Once()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, nil, time.Second, nil)

		query, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-1001", "", 0)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, "serial already in use", resp.Reason)
	})

	t.Run("store error fails closed", func(t *testing.T) {
		store := new(MockSerialReservationRepository)
		store.On("IsConsumed", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("connection refused")).Once()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, nil, time.Second, nil)

		query, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-1001", "", 0)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, "check failed", resp.Reason)
	})

	t.Run("timeout fails closed", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		store := new(MockSerialReservationRepository)
		store.On("IsConsumed", mock.Anything, mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { <-release }).
			Return(false, nil).Once()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, nil, 20*time.Millisecond, nil)

		query, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-1001", "", 0)
		started := time.Now()
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, "check failed", resp.Reason)
		assert.Less(t, time.Since(started), time.Second)
	})

	t.Run("stale sequence number is superseded without a lookup", func(t *testing.T) {
		store := new(MockSerialReservationRepository)
		store.On("IsConsumed", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
		sequencer := services.NewSerialCheckSequencer()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, sequencer, time.Second, nil)

		newer, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-10", "desk-1", 2)
		resp, err := h.Handle(t.Context(), newer)
		require.NoError(t, err)
		assert.False(t, resp.Superseded)
		assert.True(t, resp.Available)

		older, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-1", "desk-1", 1)
		resp, err = h.Handle(t.Context(), older)
		require.NoError(t, err)
		assert.True(t, resp.Superseded)
		assert.False(t, resp.Available)
		assert.Equal(t, uint64(1), resp.Seq)
		store.AssertNumberOfCalls(t, "IsConsumed", 1)
	})

	t.Run("in-flight check is cancelled by a newer one", func(t *testing.T) {
		store := new(MockSerialReservationRepository)
		entered := make(chan struct{})
		store.On("IsConsumed", mock.Anything, mock.Anything, "AB-1").
			Run(func(args mock.Arguments) {
				close(entered)
				<-args.Get(0).(context.Context).Done()
			}).
			Return(false, context.Canceled).Once()
		store.On("IsConsumed", mock.Anything, mock.Anything, "AB-12").Return(true, nil).Once()
		sequencer := services.NewSerialCheckSequencer()
		h := queries.NewCheckSerialAvailabilityQueryHandler(store, sequencer, 5*time.Second, nil)

		first, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-1", "desk-1", 1)
		second, _ := queries.NewCheckSerialAvailabilityQuery("passport-regular", "AB-12", "desk-1", 2)

		firstDone := make(chan queries.CheckSerialAvailabilityQueryResponse, 1)
		go func() {
			resp, _ := h.Handle(context.Background(), first)
			firstDone <- resp
		}()
		<-entered

		latest, err := h.Handle(t.Context(), second)
		require.NoError(t, err)
		assert.False(t, latest.Superseded)
		assert.Equal(t, "serial already in use", latest.Reason)

		stale := <-firstDone
		assert.True(t, stale.Superseded)
		assert.False(t, stale.Available)
	})
}
