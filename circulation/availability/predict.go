// Package availability predicts when a queued borrower will get a copy of a title.
//
// The c copies of a title act as c round-robin servers. Copies are sorted by the date they
// become free (available copies count as today). Rank p is dealt to the copy at sorted index
// (p-1) mod c and waits for that copy's loan end date plus one loan period for every full
// round of the queue ahead of it:
//
//	initialWait = max(0, loanEndDate - today)
//	extraWait   = floor((p-1) / c) * loan period
//	availableOn = today + initialWait + extraWait
//
// This assumes every future loan runs the full loan period and nobody leaves the queue.
package availability

import (
	"errors"
	"slices"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
)

// ErrInvalidRank is returned for ranks below 1.
var ErrInvalidRank = errors.New("queue rank must be at least 1")

// Prediction is the result of Predict.
type Prediction struct {
	Rank          int
	Copies        int
	AssignedIndex int
	AssignedCopy  core.CopyIDString
	InitialWait   int
	ExtraWait     int
	TotalWait     int
	AvailableOn   time.Time
}

// IsToday reports whether the copy is available right away.
func (p Prediction) IsToday() bool {
	return p.TotalWait == 0
}

// Predict estimates when rank gets one of copies. It fails with core.ErrBookNotFound without copies.
func Predict(copies []ledger.StockUnit, rank int, today time.Time) (Prediction, error) {
	if len(copies) == 0 {
		return Prediction{}, core.ErrBookNotFound
	}

	if rank < 1 {
		return Prediction{}, ErrInvalidRank
	}

	today = core.DateOf(today)
	sorted := sortByNextFreeDate(copies, today)

	c := len(sorted)
	assignedIndex := (rank - 1) % c
	wraps := (rank - 1) / c
	assigned := sorted[assignedIndex]

	initialWait := max(0, core.DaysBetween(today, nextFreeDate(assigned, today)))
	extraWait := wraps * core.LoanPeriodDays
	totalWait := initialWait + extraWait

	return Prediction{
		Rank:          rank,
		Copies:        c,
		AssignedIndex: assignedIndex,
		AssignedCopy:  assigned.CopyID,
		InitialWait:   initialWait,
		ExtraWait:     extraWait,
		TotalWait:     totalWait,
		AvailableOn:   core.AddDays(today, totalWait),
	}, nil
}

// sortByNextFreeDate is stable so copies with equal dates keep ingestion order.
func sortByNextFreeDate(copies []ledger.StockUnit, today time.Time) []ledger.StockUnit {
	sorted := slices.Clone(copies)

	slices.SortStableFunc(sorted, func(a, b ledger.StockUnit) int {
		return nextFreeDate(a, today).Compare(nextFreeDate(b, today))
	})

	return sorted
}

func nextFreeDate(u ledger.StockUnit, today time.Time) time.Time {
	if u.IsAvailable() {
		return today
	}

	return core.DateOf(u.LoanEndDate)
}
