// Package borrowers is the borrower directory read model, including the fines each borrower owes.
package borrowers

import (
	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

const (
	queryType = "Borrowers"
)

// Project folds registrations and fines into the directory.
func Project(history core.DomainEvents, maxSequence uint) Borrowers {
	list := make([]Borrower, 0)
	index := make(map[core.BorrowerIDString]int)

	for _, event := range history {
		switch e := event.(type) {
		case core.BorrowerRegistered:
			if _, exists := index[e.BorrowerID]; exists {
				continue
			}

			index[e.BorrowerID] = len(list)
			list = append(list, Borrower{
				BorrowerID:   e.BorrowerID,
				Name:         e.Name,
				EmailAddress: e.EmailAddress,
				FinesOwed:    decimal.Zero,
				RegisteredAt: e.OccurredAt,
			})

		case core.FineCharged:
			if i, exists := index[e.BorrowerID]; exists {
				list[i].FinesOwed = list[i].FinesOwed.Add(e.Amount)
			}
		}
	}

	return Borrowers{
		Borrowers:      list,
		Count:          len(list),
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter selects registrations and fines.
func BuildEventFilter() eventstore.Filter {
	return eventstore.NewFilter(
		eventstore.Select(
			core.BorrowerRegisteredEventType,
			core.FineChargedEventType,
		),
	)
}
