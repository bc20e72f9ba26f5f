package given

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewID returns a fresh time-ordered identifier.
func NewID(t *testing.T) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("creating uuid failed: %v", err)
	}

	return id
}

// TitleAdded builds a TitleAddedToCatalogue event for a paperback.
func TitleAdded(t *testing.T, titleID uuid.UUID, name string, author string, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildTitleAddedToCatalogue(titleID, name, author, "978-0000000000", core.Paperback, at)
}

// CopyAdded builds a BookCopyAddedToCirculation event.
func CopyAdded(t *testing.T, copyID uuid.UUID, titleID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildBookCopyAddedToCirculation(copyID, titleID, at)
}

// BorrowerRegistered builds a BorrowerRegistered event.
func BorrowerRegistered(t *testing.T, borrowerID uuid.UUID, name string, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildBorrowerRegistered(borrowerID, name, "someone@example.com", at)
}

// CopyLent builds a BookCopyLentToBorrower event due back one loan period after at.
func CopyLent(t *testing.T, copyID uuid.UUID, titleID uuid.UUID, borrowerID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()

	return CopyLentUntil(t, copyID, titleID, borrowerID, core.LoanEndDateFrom(at), at)
}

// CopyLentUntil builds a BookCopyLentToBorrower event with an explicit loan end date.
func CopyLentUntil(
	t *testing.T,
	copyID uuid.UUID,
	titleID uuid.UUID,
	borrowerID uuid.UUID,
	loanEndDate time.Time,
	at time.Time,
) core.DomainEvent {

	t.Helper()

	return core.BuildBookCopyLentToBorrower(copyID.String(), titleID.String(), borrowerID.String(), loanEndDate, at)
}

// CopyReturned builds a BookCopyReturnedByBorrower event.
func CopyReturned(t *testing.T, copyID uuid.UUID, titleID uuid.UUID, borrowerID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildBookCopyReturnedByBorrower(copyID.String(), titleID.String(), borrowerID.String(), at)
}

// FineCharged builds a FineCharged event; amount must be a valid decimal string.
func FineCharged(t *testing.T, borrowerID uuid.UUID, titleID uuid.UUID, copyID uuid.UUID, amount string, at time.Time) core.DomainEvent {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid fine amount %q: %v", amount, err)
	}

	return core.BuildFineCharged(borrowerID.String(), titleID.String(), copyID.String(), 1, value, at)
}

// ReservationPlaced builds a ReservationPlaced event.
func ReservationPlaced(t *testing.T, titleID uuid.UUID, borrowerID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildReservationPlaced(titleID.String(), borrowerID.String(), at)
}

// ReservationFulfilled builds a ReservationFulfilled event.
func ReservationFulfilled(t *testing.T, titleID uuid.UUID, borrowerID uuid.UUID, copyID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildReservationFulfilled(titleID.String(), borrowerID.String(), copyID.String(), at)
}
