package catalogue

import (
	"strings"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Project builds the catalogue restricted to titles matching query.
func Project(history core.DomainEvents, query Query, maxSequence uint) Catalogue {
	titles := make([]core.TitleAddedToCatalogue, 0)
	borrowerNames := make(map[core.BorrowerIDString]string)
	stock := ledger.New()

	for _, event := range history {
		switch e := event.(type) {
		case core.TitleAddedToCatalogue:
			if matches(e, query) {
				titles = append(titles, e)
			}

		case core.BorrowerRegistered:
			borrowerNames[e.BorrowerID] = e.Name

		default:
			stock.Apply(event)
		}
	}

	result := Catalogue{
		Titles:         make([]Title, 0, len(titles)),
		Entries:        make([]Entry, 0),
		SequenceNumber: maxSequence,
	}

	for _, t := range titles {
		copies := stock.FindCopies(t.TitleID)

		result.Titles = append(result.Titles, Title{
			TitleID: t.TitleID,
			Name:    t.Name,
			Author:  t.Author,
			ISBN:    t.ISBN,
			Format:  t.Format,
			Copies:  copies,
		})

		for _, u := range copies {
			result.Entries = append(result.Entries, Entry{
				TitleID:     t.TitleID,
				Name:        t.Name,
				Author:      t.Author,
				ISBN:        t.ISBN,
				Format:      t.Format,
				CopyID:      u.CopyID,
				Available:   u.IsAvailable(),
				OnLoanTo:    borrowerNames[u.OnLoanTo],
				LoanEndDate: u.LoanEndDate,
				BorrowerID:  u.OnLoanTo,
			})
		}
	}

	return result
}

func matches(title core.TitleAddedToCatalogue, query Query) bool {
	return containsFold(title.Name, query.Name) && containsFold(title.Author, query.Author)
}

func containsFold(s string, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

// BuildEventFilter selects titles, copies, loans, returns and the borrower names shown on loaned copies.
func BuildEventFilter() eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select(
			core.TitleAddedToCatalogueEventType,
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyLentToBorrowerEventType,
			core.BookCopyReturnedByBorrowerEventType,
			core.BorrowerRegisteredEventType,
		),
	)
}
