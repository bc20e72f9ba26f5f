package memoryengine_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/logspy"
)

func titleStream(titleID string) eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select("BookCopyAddedToCirculation", "BookCopyLentToBorrower", "ReservationPlaced").
			Where(eventstore.P("TitleID", titleID)),
	)
}

func storable(t *testing.T, eventType string, titleID string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Now(), fmt.Appendf(nil, `{"TitleID": %q, "Copies": 2}`, titleID))
	require.NoError(t, err)

	return event
}

func Test_Append_When_NoEvent_MatchesTheQuery_BeforeAppend(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := memoryengine.NewEventStore()
	filter := titleStream("t-1")

	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)

	// act
	err = es.Append(ctx, filter, maxSeq, storable(t, "BookCopyAddedToCirculation", "t-1"))

	// assert
	require.NoError(t, err)
	events, newMaxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(1), events[0].SequenceNumber)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(1), newMaxSeq)
}

func Test_Append_When_A_ConcurrencyConflict_ShouldHappen(t *testing.T) {
	// arrange
	ctx := context.Background()
	spy := logspy.New(false)
	es := memoryengine.NewEventStore(memoryengine.WithLogger(spy.Logger()))
	filter := titleStream("t-1")
	require.NoError(t, es.Append(ctx, filter, 0, storable(t, "BookCopyAddedToCirculation", "t-1")))

	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, filter, maxSeq, storable(t, "BookCopyLentToBorrower", "t-1"))) // concurrent writer

	// act
	err = es.Append(ctx, filter, maxSeq, storable(t, "ReservationPlaced", "t-1"))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 2, es.Len())
	assert.True(t, spy.HasMessage(slog.LevelInfo, "eventstore operation: concurrency conflict detected"))
}

func Test_Append_Of_Multiple_Events_IsAllOrNothing(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := memoryengine.NewEventStore()
	filter := titleStream("t-1")
	require.NoError(t, es.Append(ctx, filter, 0, storable(t, "BookCopyAddedToCirculation", "t-1")))

	// act
	staleErr := es.Append(ctx, filter, 0,
		storable(t, "BookCopyLentToBorrower", "t-1"),
		storable(t, "ReservationPlaced", "t-1"),
	)
	freshErr := es.Append(ctx, filter, 1,
		storable(t, "BookCopyLentToBorrower", "t-1"),
		storable(t, "ReservationPlaced", "t-1"),
	)

	// assert
	assert.ErrorIs(t, staleErr, eventstore.ErrConcurrencyConflict)
	assert.NoError(t, freshErr)
	events, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSeq)
}

func Test_Append_To_Another_Stream_DoesNotConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := memoryengine.NewEventStore()
	filter := titleStream("t-1")

	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, titleStream("t-2"), 0, storable(t, "BookCopyAddedToCirculation", "t-2")))

	// act
	err = es.Append(ctx, filter, maxSeq, storable(t, "BookCopyAddedToCirculation", "t-1"))

	// assert
	assert.NoError(t, err)
	events, _, err := es.Query(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), events[0].SequenceNumber)
}

func Test_Query_Ignores_Non_String_Payload_Values(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := memoryengine.NewEventStore()
	require.NoError(t, es.Append(ctx, eventstore.MatchingAnyEvent(), 0, storable(t, "BookCopyAddedToCirculation", "t-1")))
	filter := eventstore.NewFilter(eventstore.SelectAnyEventType().Where(eventstore.P("Copies", "2")))

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
}

func Test_Append_Concurrently_On_The_Same_Stream_OnlyOneWins(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := memoryengine.NewEventStore()
	filter := titleStream("t-1")
	require.NoError(t, es.Append(ctx, filter, 0, storable(t, "BookCopyAddedToCirculation", "t-1")))

	const writers = 16
	var succeeded, conflicted atomic.Int32
	var wg sync.WaitGroup

	// act
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := es.Append(ctx, filter, 1, storable(t, "BookCopyLentToBorrower", "t-1"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, eventstore.ErrConcurrencyConflict):
				conflicted.Add(1)
			}
		}()
	}
	wg.Wait()

	// assert
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(writers-1), conflicted.Load())
	assert.Equal(t, 2, es.Len())
}

func Test_Append_Errors(t *testing.T) {
	ctx := context.Background()
	es := memoryengine.NewEventStore()

	t.Run("nothing to append", func(t *testing.T) {
		err := es.Append(ctx, eventstore.MatchingAnyEvent(), 0)

		assert.ErrorIs(t, err, eventstore.ErrNothingToAppend)
	})

	t.Run("payload is not a JSON object", func(t *testing.T) {
		event, err := eventstore.BuildStorableEventWithEmptyMetadata("BookCopyAddedToCirculation", time.Now(), []byte(`["t-1"]`))
		require.NoError(t, err)

		err = es.Append(ctx, eventstore.MatchingAnyEvent(), 0, event)

		assert.ErrorIs(t, err, eventstore.ErrAppendingEventFailed)
		assert.ErrorIs(t, err, memoryengine.ErrDecodingPayloadFailed)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, queryErr := es.Query(canceled, eventstore.MatchingAnyEvent())
		appendErr := es.Append(canceled, eventstore.MatchingAnyEvent(), 0, storable(t, "ReservationPlaced", "t-1"))

		assert.ErrorIs(t, queryErr, context.Canceled)
		assert.ErrorIs(t, appendErr, context.Canceled)
	})
}
