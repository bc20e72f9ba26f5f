package core

import (
	"time"

	"github.com/google/uuid"
)

// BorrowerRegisteredEventType is the event type identifier.
const BorrowerRegisteredEventType = "BorrowerRegistered"

// BorrowerRegistered represents when a borrower was registered.
type BorrowerRegistered struct {
	EventType    EventTypeString
	BorrowerID   BorrowerIDString
	Name         string
	EmailAddress string
	OccurredAt   OccurredAt
}

// BuildBorrowerRegistered creates a new BorrowerRegistered event.
func BuildBorrowerRegistered(borrowerID uuid.UUID, name string, emailAddress string, occurredAt time.Time) BorrowerRegistered {
	return BorrowerRegistered{
		EventType:    BorrowerRegisteredEventType,
		BorrowerID:   borrowerID.String(),
		Name:         name,
		EmailAddress: emailAddress,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowerRegistered) IsEventType() string {
	return BorrowerRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowerRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
