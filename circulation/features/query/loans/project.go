// Package loans is the loans overview: who currently holds which titles.
package loans

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

const (
	queryType = "Loans"
)

// BorrowerLoans lists the titles of all active loans of one borrower, in loan order.
type BorrowerLoans struct {
	BorrowerID core.BorrowerIDString
	Borrower   string
	Books      []string
}

// Loans is the overview, one entry per borrower with at least one active loan,
// ordered by each borrower's earliest active loan.
type Loans struct {
	Borrowers      []BorrowerLoans
	SequenceNumber uint
}

// Project builds the overview from the active loans of the ledger.
func Project(history core.DomainEvents, maxSequence uint) Loans {
	titleNames := make(map[core.TitleIDString]string)
	borrowerNames := make(map[core.BorrowerIDString]string)
	stock := ledger.New()

	for _, event := range history {
		switch e := event.(type) {
		case core.TitleAddedToCatalogue:
			titleNames[e.TitleID] = e.Name

		case core.BorrowerRegistered:
			borrowerNames[e.BorrowerID] = e.Name

		default:
			stock.Apply(event)
		}
	}

	result := Loans{
		Borrowers:      make([]BorrowerLoans, 0),
		SequenceNumber: maxSequence,
	}
	position := make(map[core.BorrowerIDString]int)

	for _, loan := range stock.ActiveLoans() {
		i, seen := position[loan.OnLoanTo]
		if !seen {
			i = len(result.Borrowers)
			position[loan.OnLoanTo] = i
			result.Borrowers = append(result.Borrowers, BorrowerLoans{
				BorrowerID: loan.OnLoanTo,
				Borrower:   nameOr(borrowerNames, loan.OnLoanTo),
			})
		}

		result.Borrowers[i].Books = append(result.Borrowers[i].Books, nameOr(titleNames, loan.TitleID))
	}

	return result
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}

	return id
}

// BuildEventFilter selects the copy lifecycle plus title and borrower names.
func BuildEventFilter() eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select(
			core.TitleAddedToCatalogueEventType,
			core.BorrowerRegisteredEventType,
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyLentToBorrowerEventType,
			core.BookCopyReturnedByBorrowerEventType,
		),
	)
}
