package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyAddedToCirculationEventType is the event type identifier.
const BookCopyAddedToCirculationEventType = "BookCopyAddedToCirculation"

// BookCopyAddedToCirculation represents when a physical copy of a title was put into circulation.
type BookCopyAddedToCirculation struct {
	EventType  EventTypeString
	CopyID     CopyIDString
	TitleID    TitleIDString
	OccurredAt OccurredAt
}

// BuildBookCopyAddedToCirculation creates a new BookCopyAddedToCirculation event.
func BuildBookCopyAddedToCirculation(copyID uuid.UUID, titleID uuid.UUID, occurredAt time.Time) BookCopyAddedToCirculation {
	return BookCopyAddedToCirculation{
		EventType:  BookCopyAddedToCirculationEventType,
		CopyID:     copyID.String(),
		TitleID:    titleID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyAddedToCirculation) IsEventType() string {
	return BookCopyAddedToCirculationEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyAddedToCirculation) HasOccurredAt() time.Time {
	return e.OccurredAt
}
