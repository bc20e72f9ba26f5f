package borrowers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

// Borrower is one registered borrower with the sum of all fines charged so far.
type Borrower struct {
	BorrowerID   core.BorrowerIDString
	Name         string
	EmailAddress string
	FinesOwed    decimal.Decimal
	RegisteredAt time.Time
}

// Borrowers is the borrower directory in registration order.
type Borrowers struct {
	Borrowers      []Borrower
	Count          int
	SequenceNumber uint
}

// FindByName looks a borrower up by name, ignoring case and surrounding spaces.
func (b Borrowers) FindByName(name string) (Borrower, error) {
	name = strings.TrimSpace(name)

	for _, borrower := range b.Borrowers {
		if strings.EqualFold(borrower.Name, name) {
			return borrower, nil
		}
	}

	return Borrower{}, core.ErrBorrowerNotFound
}

// NameOf returns the name registered for borrowerID, or the id itself if unknown.
func (b Borrowers) NameOf(borrowerID core.BorrowerIDString) string {
	for _, borrower := range b.Borrowers {
		if borrower.BorrowerID == borrowerID {
			return borrower.Name
		}
	}

	return borrowerID
}
