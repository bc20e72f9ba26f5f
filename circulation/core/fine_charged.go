package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// FineChargedEventType is the event type identifier.
const FineChargedEventType = "FineCharged"

// FineCharged represents a late-return fine added to the borrower's fines owed.
type FineCharged struct {
	EventType   EventTypeString
	BorrowerID  BorrowerIDString
	TitleID     TitleIDString
	CopyID      CopyIDString
	DaysOverdue int
	Amount      decimal.Decimal
	OccurredAt  OccurredAt
}

// BuildFineCharged creates a new FineCharged event.
func BuildFineCharged(
	borrowerID BorrowerIDString,
	titleID TitleIDString,
	copyID CopyIDString,
	daysOverdue int,
	amount decimal.Decimal,
	occurredAt time.Time,
) FineCharged {

	return FineCharged{
		EventType:   FineChargedEventType,
		BorrowerID:  borrowerID,
		TitleID:     titleID,
		CopyID:      copyID,
		DaysOverdue: daysOverdue,
		Amount:      amount,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e FineCharged) IsEventType() string {
	return FineChargedEventType
}

// HasOccurredAt returns when this event occurred.
func (e FineCharged) HasOccurredAt() time.Time {
	return e.OccurredAt
}
