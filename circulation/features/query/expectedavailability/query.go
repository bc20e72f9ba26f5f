package expectedavailability

import (
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	queryType = "GetAvailability"
)

// Query asks for the expected availability of a title for a queued borrower as seen on Today.
type Query struct {
	TitleID    core.TitleIDString
	BorrowerID core.BorrowerIDString
	Today      time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(titleID core.TitleIDString, borrowerID core.BorrowerIDString, today time.Time) Query {
	return Query{
		TitleID:    titleID,
		BorrowerID: borrowerID,
		Today:      core.DateOf(today),
	}
}

// QueryType returns the type identifier for this query, used for logging.
func (q Query) QueryType() string {
	return queryType
}
