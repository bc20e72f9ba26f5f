package expectedavailability

import (
	"github.com/AntonStoeckl/circulation-engine-go/circulation/availability"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/reservation"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Project predicts when the queried borrower gets a copy.
// It fails with core.ErrBookNotFound for a title without copies
// and core.ErrReservationNotFound when the borrower is not queued.
func Project(history core.DomainEvents, query Query) (availability.Prediction, error) {
	stock := ledger.Project(history)
	queue := reservation.Project(history)

	copies := stock.FindCopies(query.TitleID)
	if len(copies) == 0 {
		return availability.Prediction{}, core.ErrBookNotFound
	}

	rank, err := queue.RankOf(query.TitleID, query.BorrowerID)
	if err != nil {
		return availability.Prediction{}, err
	}

	return availability.Predict(copies, rank, query.Today)
}

// BuildEventFilter selects the title's circulation stream.
func BuildEventFilter(titleID core.TitleIDString) eventstore.Filter {
	return eventstore.NewFilter(shell.TitleCirculation(titleID))
}
