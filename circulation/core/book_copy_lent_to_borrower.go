package core

import (
	"time"
)

// BookCopyLentToBorrowerEventType is the event type identifier.
const BookCopyLentToBorrowerEventType = "BookCopyLentToBorrower"

// BookCopyLentToBorrower represents when a copy was checked out.
// LoanEndDate is a calendar date (UTC midnight).
type BookCopyLentToBorrower struct {
	EventType   EventTypeString
	CopyID      CopyIDString
	TitleID     TitleIDString
	BorrowerID  BorrowerIDString
	LoanEndDate time.Time
	OccurredAt  OccurredAt
}

// BuildBookCopyLentToBorrower creates a new BookCopyLentToBorrower event.
func BuildBookCopyLentToBorrower(
	copyID CopyIDString,
	titleID TitleIDString,
	borrowerID BorrowerIDString,
	loanEndDate time.Time,
	occurredAt time.Time,
) BookCopyLentToBorrower {

	return BookCopyLentToBorrower{
		EventType:   BookCopyLentToBorrowerEventType,
		CopyID:      copyID,
		TitleID:     titleID,
		BorrowerID:  borrowerID,
		LoanEndDate: DateOf(loanEndDate),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyLentToBorrower) IsEventType() string {
	return BookCopyLentToBorrowerEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToBorrower) HasOccurredAt() time.Time {
	return e.OccurredAt
}
