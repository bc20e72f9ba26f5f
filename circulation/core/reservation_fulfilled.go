package core

import (
	"time"
)

// ReservationFulfilledEventType is the event type identifier.
const ReservationFulfilledEventType = "ReservationFulfilled"

// ReservationFulfilled represents a borrower leaving the queue because they received a copy.
type ReservationFulfilled struct {
	EventType  EventTypeString
	TitleID    TitleIDString
	BorrowerID BorrowerIDString
	CopyID     CopyIDString
	OccurredAt OccurredAt
}

// BuildReservationFulfilled creates a new ReservationFulfilled event.
func BuildReservationFulfilled(
	titleID TitleIDString,
	borrowerID BorrowerIDString,
	copyID CopyIDString,
	occurredAt time.Time,
) ReservationFulfilled {

	return ReservationFulfilled{
		EventType:  ReservationFulfilledEventType,
		TitleID:    titleID,
		BorrowerID: borrowerID,
		CopyID:     copyID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReservationFulfilled) IsEventType() string {
	return ReservationFulfilledEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReservationFulfilled) HasOccurredAt() time.Time {
	return e.OccurredAt
}
