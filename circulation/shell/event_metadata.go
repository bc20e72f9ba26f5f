package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the command that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events, e.g. the events of one seed run.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// NewMessageID returns a random (v4) id for metadata.
func NewMessageID() string {
	return uuid.New().String()
}

// BuildEventMetadata creates EventMetadata.
func BuildEventMetadata(messageID MessageID, causationID CausationID, correlationID CorrelationID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID,
		CausationID:   causationID,
		CorrelationID: correlationID,
	}
}

// EventMetadataFrom extracts EventMetadata from a StorableEvent.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

type correlationIDKey struct{}

// WithCorrelationID makes every event appended under ctx carry correlationID,
// e.g. to tie together all events of one seed run.
func WithCorrelationID(ctx context.Context, correlationID CorrelationID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation id stored in ctx, or fallback.
func CorrelationIDFrom(ctx context.Context, fallback CorrelationID) CorrelationID {
	if id, ok := ctx.Value(correlationIDKey{}).(CorrelationID); ok && id != "" {
		return id
	}

	return fallback
}
