package shell

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// TitleCirculation selects every copy and reservation event of one title.
// It is the consistency boundary of loans, returns and reservations for that title.
func TitleCirculation(titleID core.TitleIDString) eventstore.FilterItem {
	return eventstore.Select(
		core.BookCopyAddedToCirculationEventType,
		core.BookCopyLentToBorrowerEventType,
		core.BookCopyReturnedByBorrowerEventType,
		core.ReservationPlacedEventType,
		core.ReservationFulfilledEventType,
	).Where(eventstore.P("TitleID", titleID))
}

// BorrowerRegistration selects the registration of one borrower.
func BorrowerRegistration(borrowerID core.BorrowerIDString) eventstore.FilterItem {
	return eventstore.Select(core.BorrowerRegisteredEventType).
		Where(eventstore.P("BorrowerID", borrowerID))
}
