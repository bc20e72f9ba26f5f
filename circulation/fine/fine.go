// Package fine computes late-return fines.
package fine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

var (
	// BaseFine is charged once for every late return.
	BaseFine = decimal.RequireFromString("3.00")

	// DailyRate is charged per calendar day past the loan end date.
	DailyRate = decimal.RequireFromString("0.75")
)

// Fine is the result of Calculate. The zero value means nothing is charged.
type Fine struct {
	DaysOverdue int
	Amount      decimal.Decimal
}

// Calculate returns the fine for a copy due on loanEndDate and returned on today.
// Only calendar dates count: returning on the loan end date is not late.
func Calculate(loanEndDate time.Time, today time.Time) Fine {
	daysOverdue := core.DaysBetween(loanEndDate, today)
	if daysOverdue <= 0 {
		return Fine{Amount: decimal.Zero}
	}

	return Fine{
		DaysOverdue: daysOverdue,
		Amount:      BaseFine.Add(DailyRate.Mul(decimal.NewFromInt(int64(daysOverdue)))),
	}
}

// IsCharged reports whether the fine is non-zero.
func (f Fine) IsCharged() bool {
	return f.DaysOverdue > 0
}

// Breakdown renders the fine as "3.00 + 0.75 x 2 days = 4.50".
func (f Fine) Breakdown() string {
	return fmt.Sprintf(
		"%s + %s x %d %s = %s",
		BaseFine.StringFixed(2),
		DailyRate.StringFixed(2),
		f.DaysOverdue,
		pluralDays(f.DaysOverdue),
		f.Amount.StringFixed(2),
	)
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}

	return "days"
}

// ForReturn calculates the fine for a copy returned by returned and builds the
// FineCharged event for it. ok is false when nothing is charged.
func ForReturn(returned core.BookCopyReturnedByBorrower, loanEndDate time.Time) (Fine, core.FineCharged, bool) {
	f := Calculate(loanEndDate, returned.OccurredAt)
	if !f.IsCharged() {
		return f, core.FineCharged{}, false
	}

	charged := core.BuildFineCharged(
		returned.BorrowerID,
		returned.TitleID,
		returned.CopyID,
		f.DaysOverdue,
		f.Amount,
		returned.OccurredAt,
	)

	return f, charged, true
}
