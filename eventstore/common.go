package eventstore

import (
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("events table name must not be empty")
	ErrNilDatabaseConnection       = errors.New("database connection must not be nil")
	ErrConcurrencyConflict         = errors.New("concurrency conflict, the event stream was changed by another writer")
	ErrBuildingQueryFailed         = errors.New("building the query failed")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning a db row failed")
	ErrBuildingStorableEventFailed = errors.New("building a storable event from a db row failed")
	ErrAppendingEventFailed        = errors.New("appending events failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrNothingToAppend             = errors.New("at least one event must be supplied for appending")
	ErrCreatingSchemaFailed        = errors.New("creating the events schema failed")
)

// MaxSequenceNumberUint is the highest sequence number of a dynamic event stream.
// Zero means the stream is empty.
type MaxSequenceNumberUint = uint
