package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/availability"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/fine"
)

const (
	dateLayout = "2006-01-02"

	msgReturned = "Book successfully returned, thank you!"

	// MsgSomethingWentWrong is shown for every error that is not an expected circulation outcome.
	MsgSomethingWentWrong = "Something went wrong, please try again later."
)

func loanMessage(loanEndDate time.Time) string {
	return fmt.Sprintf("Book successfully loaned, please return it by %s.", loanEndDate.Format(dateLayout))
}

func reservationMessage(rank int) string {
	return fmt.Sprintf(
		"No copy is available right now, a reservation has been made for you at position %d in the queue.",
		rank,
	)
}

func returnMessage(f fine.Fine) string {
	if !f.IsCharged() {
		return msgReturned
	}

	return fmt.Sprintf("%s A late return fine has been charged: %s.", msgReturned, f.Breakdown())
}

func availabilityMessage(p availability.Prediction) string {
	if p.IsToday() {
		return "A copy is available for you today."
	}

	return fmt.Sprintf(
		"A copy is expected to be available for you on %s, %d days away.",
		p.AvailableOn.Format(dateLayout),
		p.TotalWait,
	)
}

// UserMessage turns an error returned by the Engine into text for the borrower.
// Anything that is not an expected circulation outcome becomes MsgSomethingWentWrong.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrBorrowerNotFound):
		return "Borrower not found, please check the name and try again."
	case errors.Is(err, core.ErrBookNotFound):
		return "Book not found, please check the title and author and try again."
	case errors.Is(err, core.ErrLoanNotFound):
		return "Error finding loan, please try again."
	case errors.Is(err, core.ErrReservationNotFound):
		return "You have no reservation for this book, loan it first to join the queue."
	case errors.Is(err, core.ErrNotAvailable):
		return "The book could not be loaned right now, please try again."
	case errors.Is(err, core.ErrNotOnLoan):
		return "This copy is not on loan, it may already have been returned."
	case errors.Is(err, core.ErrBorrowerAlreadyRegistered):
		return "A borrower with this name is already registered."
	case errors.Is(err, core.ErrTitleAlreadyInCatalogue):
		return "This title is already in the catalogue."
	default:
		return MsgSomethingWentWrong
	}
}
