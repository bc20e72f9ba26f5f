package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.TitleAddedToCatalogueEventType:
		return unmarshal[core.TitleAddedToCatalogue](storableEvent.PayloadJSON)

	case core.BookCopyAddedToCirculationEventType:
		return unmarshal[core.BookCopyAddedToCirculation](storableEvent.PayloadJSON)

	case core.BorrowerRegisteredEventType:
		return unmarshal[core.BorrowerRegistered](storableEvent.PayloadJSON)

	case core.BookCopyLentToBorrowerEventType:
		return unmarshal[core.BookCopyLentToBorrower](storableEvent.PayloadJSON)

	case core.BookCopyReturnedByBorrowerEventType:
		return unmarshal[core.BookCopyReturnedByBorrower](storableEvent.PayloadJSON)

	case core.FineChargedEventType:
		return unmarshal[core.FineCharged](storableEvent.PayloadJSON)

	case core.ReservationPlacedEventType:
		return unmarshal[core.ReservationPlaced](storableEvent.PayloadJSON)

	case core.ReservationFulfilledEventType:
		return unmarshal[core.ReservationFulfilled](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
