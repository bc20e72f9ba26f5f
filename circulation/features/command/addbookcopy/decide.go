package addbookcopy

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Decide is the pure decision for adding a copy.
//
//	THEN: BookCopyAddedToCirculation
//	ERROR: ErrBookNotFound if the title is not in the catalogue
//	IDEMPOTENCY: the copy was already added (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	titleID := command.TitleID.String()
	copyID := command.CopyID.String()
	titleIsCatalogued := false

	for _, event := range history {
		switch e := event.(type) {
		case core.TitleAddedToCatalogue:
			if e.TitleID == titleID {
				titleIsCatalogued = true
			}

		case core.BookCopyAddedToCirculation:
			if e.CopyID == copyID {
				return core.IdempotentDecision()
			}
		}
	}

	if !titleIsCatalogued {
		return core.ErrorDecision(core.ErrBookNotFound)
	}

	return core.SuccessDecision(core.BuildBookCopyAddedToCirculation(command.CopyID, command.TitleID, command.OccurredAt))
}

// BuildEventFilter selects the title and its copies.
func BuildEventFilter(titleID string) eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select(
			core.TitleAddedToCatalogueEventType,
			core.BookCopyAddedToCirculationEventType,
		).Where(eventstore.P("TitleID", titleID)),
	)
}
