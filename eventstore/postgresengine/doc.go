// Package postgresengine is the PostgreSQL implementation of the circulation event store.
//
// Events live in one append-only table. A dynamic event stream is selected with an
// eventstore.Filter, which becomes a WHERE clause on event_type and on jsonb containment
// of the payload (payload @> '{"TitleID": "..."}').
//
// Append is a conditional INSERT ... SELECT guarded by the max sequence number of the
// same filtered stream, executed in a SERIALIZABLE transaction. If another writer appended
// to that stream in between, nothing is inserted or the transaction fails with a
// serialization failure; both surface as eventstore.ErrConcurrencyConflict.
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(slog.Default()))
//	_ = store.CreateSchema(ctx)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, lent, reservationFulfilled)
package postgresengine
