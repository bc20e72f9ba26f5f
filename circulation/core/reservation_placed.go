package core

import (
	"time"
)

// ReservationPlacedEventType is the event type identifier.
const ReservationPlacedEventType = "ReservationPlaced"

// ReservationPlaced represents a borrower joining the queue of a title. OccurredAt is the request time.
type ReservationPlaced struct {
	EventType  EventTypeString
	TitleID    TitleIDString
	BorrowerID BorrowerIDString
	OccurredAt OccurredAt
}

// BuildReservationPlaced creates a new ReservationPlaced event.
func BuildReservationPlaced(titleID TitleIDString, borrowerID BorrowerIDString, occurredAt time.Time) ReservationPlaced {
	return ReservationPlaced{
		EventType:  ReservationPlacedEventType,
		TitleID:    titleID,
		BorrowerID: borrowerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReservationPlaced) IsEventType() string {
	return ReservationPlacedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReservationPlaced) HasOccurredAt() time.Time {
	return e.OccurredAt
}
