package addtitle

import (
	"strings"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Decide is the pure decision for adding a title.
//
//	THEN: TitleAddedToCatalogue
//	ERROR: ErrTitleAlreadyInCatalogue if another title has the same name and author (case-insensitive)
//	IDEMPOTENCY: a title with the same id already exists (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	titleID := command.TitleID.String()

	for _, event := range history {
		e, ok := event.(core.TitleAddedToCatalogue)
		if !ok {
			continue
		}

		if e.TitleID == titleID {
			return core.IdempotentDecision()
		}

		if strings.EqualFold(e.Name, command.Name) && strings.EqualFold(e.Author, command.Author) {
			return core.ErrorDecision(core.ErrTitleAlreadyInCatalogue)
		}
	}

	return core.SuccessDecision(
		core.BuildTitleAddedToCatalogue(
			command.TitleID,
			command.Name,
			command.Author,
			command.ISBN,
			command.Format,
			command.OccurredAt,
		),
	)
}

// BuildEventFilter selects the whole catalogue, the boundary of the name + author uniqueness rule.
func BuildEventFilter() eventstore.Filter {
	return eventstore.NewFilter(eventstore.Select(core.TitleAddedToCatalogueEventType))
}
