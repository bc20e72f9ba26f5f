package returnbook

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/fine"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Outcome names the returned copy and the fine charged for it, if any.
type Outcome struct {
	CopyID core.CopyIDString
	Fine   fine.Fine
}

// Decide is the pure return decision.
//
//	GIVEN: a title and a borrower holding a copy of it
//	WHEN: ReturnBook is received
//	THEN: BookCopyReturnedByBorrower, plus FineCharged when returned after the loan end date
//	ERROR: ErrBorrowerNotFound if the borrower is not registered
//	ERROR: ErrBookNotFound if the title has no copies
//	ERROR: ErrLoanNotFound if no copy of the title is on loan to the borrower
func Decide(history core.DomainEvents, command Command) (core.DecisionResult, Outcome) {
	borrowerIsRegistered := false
	stock := ledger.New()

	for _, event := range history {
		if e, ok := event.(core.BorrowerRegistered); ok && e.BorrowerID == command.BorrowerID {
			borrowerIsRegistered = true
		}

		stock.Apply(event)
	}

	if !borrowerIsRegistered {
		return core.ErrorDecision(core.ErrBorrowerNotFound), Outcome{}
	}

	if len(stock.FindCopies(command.TitleID)) == 0 {
		return core.ErrorDecision(core.ErrBookNotFound), Outcome{}
	}

	onLoan, ok := stock.FindCopyOnLoanTo(command.TitleID, command.BorrowerID)
	if !ok {
		return core.ErrorDecision(core.ErrLoanNotFound), Outcome{}
	}

	checkedIn, returned, err := stock.Checkin(onLoan.CopyID, command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err), Outcome{}
	}

	charged, fineCharged, isCharged := fine.ForReturn(returned, checkedIn.LoanEndDate)
	outcome := Outcome{CopyID: returned.CopyID, Fine: charged}

	if isCharged {
		return core.SuccessDecision(returned, fineCharged), outcome
	}

	return core.SuccessDecision(returned), outcome
}

// BuildEventFilter selects the title's circulation stream and the borrower's registration.
func BuildEventFilter(titleID core.TitleIDString, borrowerID core.BorrowerIDString) eventstore.Filter {
	return eventstore.NewFilter(
		shell.TitleCirculation(titleID),
		shell.BorrowerRegistration(borrowerID),
	)
}
