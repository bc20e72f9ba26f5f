package loanbook

import (
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/reservation"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Outcome tells the caller what the decision did: either a copy was lent
// or the borrower holds the given rank in the title's reservation queue.
type Outcome struct {
	Lent        bool
	CopyID      core.CopyIDString
	LoanEndDate time.Time
	Rank        int
}

type state struct {
	borrowerIsRegistered bool
	stock                *ledger.Ledger
	queue                *reservation.Queue
}

// Decide is the pure loan decision.
//
//	GIVEN: a title and a borrower
//	WHEN: LoanBook is received
//	THEN: BookCopyLentToBorrower (+ ReservationFulfilled if the borrower was queued) when a copy is available
//	THEN: ReservationPlaced when no copy is available
//	ERROR: ErrBorrowerNotFound if the borrower is not registered
//	ERROR: ErrBookNotFound if the title has no copies
//	IDEMPOTENCY: a borrower already queued for the title keeps its reservation (no-op)
func Decide(history core.DomainEvents, command Command) (core.DecisionResult, Outcome) {
	s := project(history, command.BorrowerID)

	if !s.borrowerIsRegistered {
		return core.ErrorDecision(core.ErrBorrowerNotFound), Outcome{}
	}

	if len(s.stock.FindCopies(command.TitleID)) == 0 {
		return core.ErrorDecision(core.ErrBookNotFound), Outcome{}
	}

	if available, ok := s.stock.FindAvailableCopy(command.TitleID); ok {
		lent, err := s.stock.Checkout(available.CopyID, command.BorrowerID, command.OccurredAt)
		if err != nil {
			return core.ErrorDecision(err), Outcome{}
		}

		outcome := Outcome{Lent: true, CopyID: lent.CopyID, LoanEndDate: lent.LoanEndDate}

		fulfilled, wasQueued := s.queue.Dequeue(command.TitleID, command.BorrowerID, lent.CopyID, command.OccurredAt)
		if wasQueued {
			return core.SuccessDecision(lent, fulfilled), outcome
		}

		return core.SuccessDecision(lent), outcome
	}

	if rank, err := s.queue.RankOf(command.TitleID, command.BorrowerID); err == nil {
		return core.IdempotentDecision(), Outcome{Rank: rank}
	}

	placed, rank := s.queue.Enqueue(command.TitleID, command.BorrowerID, command.OccurredAt)

	return core.SuccessDecision(placed), Outcome{Rank: rank}
}

func project(history core.DomainEvents, borrowerID core.BorrowerIDString) state {
	s := state{
		stock: ledger.New(),
		queue: reservation.New(),
	}

	for _, event := range history {
		if e, ok := event.(core.BorrowerRegistered); ok && e.BorrowerID == borrowerID {
			s.borrowerIsRegistered = true
		}

		s.stock.Apply(event)
		s.queue.Apply(event)
	}

	return s
}

// BuildEventFilter selects the title's circulation stream and the borrower's registration.
func BuildEventFilter(titleID core.TitleIDString, borrowerID core.BorrowerIDString) eventstore.Filter {
	return eventstore.NewFilter(
		shell.TitleCirculation(titleID),
		shell.BorrowerRegistration(borrowerID),
	)
}
