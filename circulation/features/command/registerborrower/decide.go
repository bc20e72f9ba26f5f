package registerborrower

import (
	"strings"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Decide is the pure decision for registering a borrower.
//
//	THEN: BorrowerRegistered
//	ERROR: ErrBorrowerAlreadyRegistered if another borrower has the same name
//	IDEMPOTENCY: the borrower id is already registered (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	borrowerID := command.BorrowerID.String()

	for _, event := range history {
		e, ok := event.(core.BorrowerRegistered)
		if !ok {
			continue
		}

		if e.BorrowerID == borrowerID {
			return core.IdempotentDecision()
		}

		if strings.EqualFold(e.Name, command.Name) {
			return core.ErrorDecision(core.ErrBorrowerAlreadyRegistered)
		}
	}

	return core.SuccessDecision(
		core.BuildBorrowerRegistered(command.BorrowerID, command.Name, command.EmailAddress, command.OccurredAt),
	)
}

// BuildEventFilter selects every registration, the boundary of the unique name rule.
func BuildEventFilter() eventstore.Filter {
	return eventstore.NewFilter(eventstore.Select(core.BorrowerRegisteredEventType))
}
