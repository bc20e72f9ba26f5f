package core

import (
	"time"
)

// BookCopyReturnedByBorrowerEventType is the event type identifier.
const BookCopyReturnedByBorrowerEventType = "BookCopyReturnedByBorrower"

// BookCopyReturnedByBorrower represents when a copy was checked in.
type BookCopyReturnedByBorrower struct {
	EventType  EventTypeString
	CopyID     CopyIDString
	TitleID    TitleIDString
	BorrowerID BorrowerIDString
	OccurredAt OccurredAt
}

// BuildBookCopyReturnedByBorrower creates a new BookCopyReturnedByBorrower event.
func BuildBookCopyReturnedByBorrower(
	copyID CopyIDString,
	titleID TitleIDString,
	borrowerID BorrowerIDString,
	occurredAt time.Time,
) BookCopyReturnedByBorrower {

	return BookCopyReturnedByBorrower{
		EventType:  BookCopyReturnedByBorrowerEventType,
		CopyID:     copyID,
		TitleID:    titleID,
		BorrowerID: borrowerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReturnedByBorrower) IsEventType() string {
	return BookCopyReturnedByBorrowerEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByBorrower) HasOccurredAt() time.Time {
	return e.OccurredAt
}
