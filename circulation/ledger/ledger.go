// Package ledger is the Stock Ledger: the loan state of every physical copy, projected from
// the copy events. Checkout and Checkin enforce the state machine
// Available -> OnLoan(borrower, loanEndDate) -> Available and return the event to append.
package ledger

import (
	"slices"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

// StockUnit is one physical copy. OnLoanTo is empty iff LoanEndDate is zero.
type StockUnit struct {
	CopyID      core.CopyIDString
	TitleID     core.TitleIDString
	OnLoanTo    core.BorrowerIDString
	LoanEndDate time.Time

	loanOrder int
}

// IsAvailable reports whether the copy can be checked out.
func (u StockUnit) IsAvailable() bool {
	return u.OnLoanTo == ""
}

// Ledger holds the copies in ingestion order.
type Ledger struct {
	units     []StockUnit
	byCopy    map[core.CopyIDString]int
	loanCount int
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{byCopy: make(map[core.CopyIDString]int)}
}

// Project replays the history into a new Ledger. Unrelated events are ignored.
func Project(history core.DomainEvents) *Ledger {
	l := New()

	for _, event := range history {
		l.Apply(event)
	}

	return l
}

// Apply folds one event into the ledger.
func (l *Ledger) Apply(event core.DomainEvent) {
	switch e := event.(type) {
	case core.BookCopyAddedToCirculation:
		if _, ok := l.byCopy[e.CopyID]; ok {
			return
		}

		l.byCopy[e.CopyID] = len(l.units)
		l.units = append(l.units, StockUnit{CopyID: e.CopyID, TitleID: e.TitleID})

	case core.BookCopyLentToBorrower:
		if i, ok := l.byCopy[e.CopyID]; ok {
			l.loanCount++
			l.units[i].OnLoanTo = e.BorrowerID
			l.units[i].LoanEndDate = e.LoanEndDate
			l.units[i].loanOrder = l.loanCount
		}

	case core.BookCopyReturnedByBorrower:
		if i, ok := l.byCopy[e.CopyID]; ok {
			l.units[i].OnLoanTo = ""
			l.units[i].LoanEndDate = time.Time{}
			l.units[i].loanOrder = 0
		}
	}
}

// FindCopies returns all copies of a title, any state, in ingestion order.
func (l *Ledger) FindCopies(titleID core.TitleIDString) []StockUnit {
	copies := make([]StockUnit, 0)

	for _, u := range l.units {
		if u.TitleID == titleID {
			copies = append(copies, u)
		}
	}

	return copies
}

// FindCopy returns the copy with the given id.
func (l *Ledger) FindCopy(copyID core.CopyIDString) (StockUnit, bool) {
	i, ok := l.byCopy[copyID]
	if !ok {
		return StockUnit{}, false
	}

	return l.units[i], true
}

// FindAvailableCopy returns the first available copy of a title in ingestion order.
func (l *Ledger) FindAvailableCopy(titleID core.TitleIDString) (StockUnit, bool) {
	for _, u := range l.units {
		if u.TitleID == titleID && u.IsAvailable() {
			return u, true
		}
	}

	return StockUnit{}, false
}

// FindCopyOnLoanTo returns the borrower's copy of a title, the one with the earliest loan end date if several.
func (l *Ledger) FindCopyOnLoanTo(titleID core.TitleIDString, borrowerID core.BorrowerIDString) (StockUnit, bool) {
	var found StockUnit
	ok := false

	for _, u := range l.units {
		if u.TitleID != titleID || u.OnLoanTo != borrowerID || borrowerID == "" {
			continue
		}

		if !ok || u.LoanEndDate.Before(found.LoanEndDate) {
			found, ok = u, true
		}
	}

	return found, ok
}

// Checkout lends an available copy to the borrower until today + the loan period.
func (l *Ledger) Checkout(
	copyID core.CopyIDString,
	borrowerID core.BorrowerIDString,
	now time.Time,
) (core.BookCopyLentToBorrower, error) {

	u, ok := l.FindCopy(copyID)
	if !ok || !u.IsAvailable() {
		return core.BookCopyLentToBorrower{}, core.ErrNotAvailable
	}

	event := core.BuildBookCopyLentToBorrower(u.CopyID, u.TitleID, borrowerID, core.LoanEndDateFrom(now), now)
	l.Apply(event)

	return event, nil
}

// Checkin frees a copy that is on loan and returns the borrower and loan end date it was freed from.
func (l *Ledger) Checkin(copyID core.CopyIDString, now time.Time) (CheckedIn, core.BookCopyReturnedByBorrower, error) {
	u, ok := l.FindCopy(copyID)
	if !ok || u.IsAvailable() {
		return CheckedIn{}, core.BookCopyReturnedByBorrower{}, core.ErrNotOnLoan
	}

	event := core.BuildBookCopyReturnedByBorrower(u.CopyID, u.TitleID, u.OnLoanTo, now)
	l.Apply(event)

	return CheckedIn{BorrowerID: u.OnLoanTo, LoanEndDate: u.LoanEndDate}, event, nil
}

// CheckedIn is the borrower/date pair freed by Checkin, input for the fine calculation.
type CheckedIn struct {
	BorrowerID  core.BorrowerIDString
	LoanEndDate time.Time
}

// ActiveLoans returns every copy currently on loan, in the order the loans were made.
func (l *Ledger) ActiveLoans() []StockUnit {
	loans := make([]StockUnit, 0)

	for _, u := range l.units {
		if !u.IsAvailable() {
			loans = append(loans, u)
		}
	}

	slices.SortFunc(loans, func(a, b StockUnit) int {
		return a.loanOrder - b.loanOrder
	})

	return loans
}
