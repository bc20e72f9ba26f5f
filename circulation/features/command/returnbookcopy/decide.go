package returnbookcopy

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/fine"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Outcome names who returned which title and the fine charged for it, if any.
type Outcome struct {
	TitleID    core.TitleIDString
	BorrowerID core.BorrowerIDString
	Fine       fine.Fine
}

// Decide is the pure return decision for one copy.
//
//	ERROR: ErrLoanNotFound if the copy is unknown
//	ERROR: ErrNotOnLoan if the copy is available, e.g. on a second return
func Decide(history core.DomainEvents, command Command) (core.DecisionResult, Outcome) {
	stock := ledger.Project(history)

	if _, ok := stock.FindCopy(command.CopyID); !ok {
		return core.ErrorDecision(core.ErrLoanNotFound), Outcome{}
	}

	checkedIn, returned, err := stock.Checkin(command.CopyID, command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err), Outcome{}
	}

	charged, fineCharged, isCharged := fine.ForReturn(returned, checkedIn.LoanEndDate)
	outcome := Outcome{TitleID: returned.TitleID, BorrowerID: returned.BorrowerID, Fine: charged}

	if isCharged {
		return core.SuccessDecision(returned, fineCharged), outcome
	}

	return core.SuccessDecision(returned), outcome
}

// BuildEventFilter selects the lifecycle of one copy.
// Loans of the copy made through the title stream carry the CopyID too, so both sides see each other's appends.
func BuildEventFilter(copyID core.CopyIDString) eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select(
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyLentToBorrowerEventType,
			core.BookCopyReturnedByBorrowerEventType,
		).Where(eventstore.P("CopyID", copyID)),
	)
}
