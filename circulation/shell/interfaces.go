package shell

import (
	"context"

	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// EventQuerier is the read half of an event store.
type EventQuerier interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need: Query plus the conditional Append.
type EventStore interface {
	EventQuerier
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}
