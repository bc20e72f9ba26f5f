package memoryengine

import (
	"context"
	"errors"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

const (
	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logMsgDecodePayloadFailed = "failed to decode payload for filtering"
	logAttrError              = "error"
	logAttrFilter             = "filter"
	logAttrEventType          = "event_type"
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// ErrDecodingPayloadFailed is returned when a stored payload cannot be decoded for filter evaluation.
var ErrDecodingPayloadFailed = errors.New("decoding the event payload failed")

// EventStore keeps all events in a slice, ordered by sequence number.
type EventStore struct {
	mu     sync.RWMutex
	events eventstore.StorableEvents
	index  []map[string]string
	logger eventstore.Logger
}

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore)

// WithLogger sets the logger for the EventStore.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) {
		es.logger = logger
	}
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{}

	for _, option := range options {
		option(es)
	}

	return es
}

// Query returns the events of the dynamic event stream selected by filter and its max sequence number.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for i, event := range es.events {
		if filter.Matches(event.EventType, lookup(es.index[i])) {
			eventStream = append(eventStream, event)
			maxSequenceNumber = event.SequenceNumber
		}
	}

	if es.logger != nil {
		es.logger.Info(logMsgQueryCompleted, logAttrEventCount, len(eventStream), logAttrFilter, filter.String())
	}

	return eventStream, maxSequenceNumber, nil
}

// Append appends the events if the stream selected by filter still has expectedMaxSequenceNumber,
// otherwise it returns eventstore.ErrConcurrencyConflict and appends nothing.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	events ...eventstore.StorableEvent,
) error {

	if len(events) == 0 {
		return eventstore.ErrNothingToAppend
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	indexes := make([]map[string]string, 0, len(events))
	for _, event := range events {
		idx, err := decodePayload(event.PayloadJSON)
		if err != nil {
			if es.logger != nil {
				es.logger.Error(logMsgDecodePayloadFailed, logAttrError, err.Error(), logAttrEventType, event.EventType)
			}

			return errors.Join(eventstore.ErrAppendingEventFailed, err)
		}

		indexes = append(indexes, idx)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	actual := es.maxSequenceNumberOf(filter)
	if actual != expectedMaxSequenceNumber {
		if es.logger != nil {
			es.logger.Info(
				logMsgConcurrencyConflict,
				logAttrExpectedSequence, expectedMaxSequenceNumber,
				logAttrActualSequence, actual,
			)
		}

		return eventstore.ErrConcurrencyConflict
	}

	for i, event := range events {
		seq := eventstore.MaxSequenceNumberUint(len(es.events) + 1)
		es.events = append(es.events, event.WithSequenceNumber(seq))
		es.index = append(es.index, indexes[i])
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(events))
	}

	return nil
}

// Len returns the number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

// maxSequenceNumberOf must be called with the lock held.
func (es *EventStore) maxSequenceNumberOf(filter eventstore.Filter) eventstore.MaxSequenceNumberUint {
	for i := len(es.events) - 1; i >= 0; i-- {
		if filter.Matches(es.events[i].EventType, lookup(es.index[i])) {
			return es.events[i].SequenceNumber
		}
	}

	return 0
}

// decodePayload keeps the top-level string fields of the payload.
// jsonb containment with a string value never matches other JSON types either.
func decodePayload(payloadJSON []byte) (map[string]string, error) {
	var payload map[string]any
	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrDecodingPayloadFailed, err)
	}

	flat := make(map[string]string, len(payload))
	for key, val := range payload {
		if v, ok := val.(string); ok {
			flat[key] = v
		}
	}

	return flat, nil
}

func lookup(index map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := index[key]
		return v, ok
	}
}
