package availability_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/availability"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
)

var today = time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

func onLoanUntil(days ...int) []ledger.StockUnit {
	copies := make([]ledger.StockUnit, 0, len(days))
	for i, d := range days {
		copies = append(copies, ledger.StockUnit{
			CopyID:      fmt.Sprintf("c-%d", i+1),
			TitleID:     "t-1",
			OnLoanTo:    fmt.Sprintf("b-%d", i+1),
			LoanEndDate: core.AddDays(today, d),
		})
	}

	return copies
}

func Test_Predict_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		copies       []ledger.StockUnit
		rank         int
		totalWait    int
		assignedCopy string
	}{
		{"one copy due today, rank 1", onLoanUntil(0), 1, 0, "c-1"},
		{"one copy due in 7 days, rank 1", onLoanUntil(7), 1, 7, "c-1"},
		{"one copy due today, rank 4", onLoanUntil(0), 4, 21, "c-1"},
		{"two copies due in 7 and 8 days, rank 3", onLoanUntil(7, 8), 3, 14, "c-1"},
		{"five copies due in 7 to 11 days, rank 6", onLoanUntil(7, 8, 9, 10, 11), 6, 14, "c-1"},
		{"five copies, rank 5 gets the latest copy", onLoanUntil(7, 8, 9, 10, 11), 5, 11, "c-5"},
		{"unsorted copies are dealt in date order", onLoanUntil(11, 7, 9), 2, 9, "c-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			p, err := availability.Predict(tt.copies, tt.rank, today)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tt.totalWait, p.TotalWait)
			assert.Equal(t, tt.assignedCopy, p.AssignedCopy)
			assert.Equal(t, core.AddDays(today, tt.totalWait), p.AvailableOn)
			assert.Equal(t, tt.totalWait == 0, p.IsToday())
		})
	}
}

func Test_Predict_FirstRoundHasNoExtraWait(t *testing.T) {
	for c := 1; c <= 6; c++ {
		days := make([]int, c)
		for i := range days {
			days[i] = i + 1
		}
		copies := onLoanUntil(days...)

		for p := 1; p <= c; p++ {
			prediction, err := availability.Predict(copies, p, today)

			require.NoError(t, err)
			assert.Equal(t, (p-1)%c, prediction.AssignedIndex, "c=%d p=%d", c, p)
			assert.Equal(t, 0, prediction.ExtraWait, "c=%d p=%d", c, p)
		}
	}
}

func Test_Predict_SecondRoundWaitsOneLoanPeriodMore(t *testing.T) {
	for c := 1; c <= 6; c++ {
		days := make([]int, c)
		for i := range days {
			days[i] = 2 * i
		}
		copies := onLoanUntil(days...)

		for p := c + 1; p <= 2*c; p++ {
			prediction, err := availability.Predict(copies, p, today)

			require.NoError(t, err)
			assert.Equal(t, (p-1)%c, prediction.AssignedIndex, "c=%d p=%d", c, p)
			assert.Equal(t, core.LoanPeriodDays, prediction.ExtraWait, "c=%d p=%d", c, p)
		}
	}
}

func Test_Predict_AvailableCopiesCountAsToday(t *testing.T) {
	copies := onLoanUntil(5)
	copies = append(copies, ledger.StockUnit{CopyID: "c-free", TitleID: "t-1"})

	first, err := availability.Predict(copies, 1, today)
	require.NoError(t, err)
	second, err := availability.Predict(copies, 2, today)
	require.NoError(t, err)

	assert.Equal(t, "c-free", first.AssignedCopy)
	assert.True(t, first.IsToday())
	assert.Equal(t, 5, second.TotalWait)
}

func Test_Predict_OverdueCopiesDoNotWaitNegativeDays(t *testing.T) {
	p, err := availability.Predict(onLoanUntil(-4), 2, today)

	require.NoError(t, err)
	assert.Equal(t, 0, p.InitialWait)
	assert.Equal(t, 7, p.TotalWait)
}

func Test_Predict_IsIdempotent(t *testing.T) {
	copies := onLoanUntil(7, 8)

	first, err := availability.Predict(copies, 3, today)
	require.NoError(t, err)
	second, err := availability.Predict(copies, 3, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Predict_ErrorCases(t *testing.T) {
	_, noCopiesErr := availability.Predict(nil, 1, today)
	_, rankErr := availability.Predict(onLoanUntil(1), 0, today)

	assert.ErrorIs(t, noCopiesErr, core.ErrBookNotFound)
	assert.ErrorIs(t, rankErr, availability.ErrInvalidRank)
}
