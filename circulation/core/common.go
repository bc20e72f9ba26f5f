package core

import (
	"time"
)

// TitleIDString identifies a title in the catalogue.
type TitleIDString = string

// CopyIDString identifies one physical copy (stock unit).
type CopyIDString = string

// BorrowerIDString identifies a registered borrower.
type BorrowerIDString = string

// EventTypeString is the type identifier stored with each event.
type EventTypeString = string

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time

// LoanPeriodDays is both the loan duration and the queue slot length of the availability prediction.
const LoanPeriodDays = 7

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// DateOf returns the calendar date of t as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from 'from' to 'to', negative if 'to' is earlier.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)) / (24 * time.Hour))
}

// AddDays returns the calendar date n days after the date of t.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// LoanEndDateFrom returns the loan end date for a checkout on the date of today.
func LoanEndDateFrom(today time.Time) time.Time {
	return AddDays(today, LoanPeriodDays)
}
