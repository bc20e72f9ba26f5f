// Package eventstore holds the storage-agnostic building blocks of the circulation event log.
//
// Circulation state (copies, loans, reservations, fines) is never stored as mutable rows.
// It is derived from an append-only log of events, and every write is guarded by the
// sequence number of the "dynamic event stream" the writer looked at before deciding.
//
// Key types:
//   - Filter: selects a dynamic event stream by event types and JSON payload predicates
//   - StorableEvent: a scalar DTO the engines persist and return
//   - MaxSequenceNumberUint: the optimistic concurrency token of a stream
//
// Typical usage:
//
//	filter := eventstore.NewFilter(
//		eventstore.Select(
//			core.BookCopyAddedToCirculationEventType,
//			core.BookCopyLentToBorrowerEventType,
//			core.BookCopyReturnedByBorrowerEventType,
//		).Where(eventstore.P("TitleID", titleID)),
//	)
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, lentEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// somebody else changed the stream, query and decide again
//	}
package eventstore
