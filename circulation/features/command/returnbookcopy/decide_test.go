package returnbookcopy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/returnbookcopy"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/given"
)

func Test_Decide_Returns_The_Copy_And_Charges_The_Holder(t *testing.T) {
	// arrange
	lentOn := given.Day(2026, time.March, 2)
	titleID, copyID, borrowerID := given.NewID(t), given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.CopyAdded(t, copyID, titleID, lentOn.AddDate(0, -1, 0)),
		given.CopyLent(t, copyID, titleID, borrowerID, lentOn),
	}

	// act
	result, outcome := returnbookcopy.Decide(history, returnbookcopy.BuildCommand(copyID.String(), lentOn.AddDate(0, 0, 8)))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 2)
	assert.Equal(t, titleID.String(), outcome.TitleID)
	assert.Equal(t, borrowerID.String(), outcome.BorrowerID)
	assert.Equal(t, "3.75", outcome.Fine.Amount.StringFixed(2))
}

func Test_Decide_BusinessErrors(t *testing.T) {
	today := given.Day(2026, time.March, 2)
	titleID, copyID, borrowerID := given.NewID(t), given.NewID(t), given.NewID(t)

	testCases := []struct {
		name        string
		history     core.DomainEvents
		expectedErr error
	}{
		{
			name:        "unknown copy",
			history:     core.DomainEvents{},
			expectedErr: core.ErrLoanNotFound,
		},
		{
			name: "copy never lent",
			history: core.DomainEvents{
				given.CopyAdded(t, copyID, titleID, today.AddDate(0, -1, 0)),
			},
			expectedErr: core.ErrNotOnLoan,
		},
		{
			name: "double return",
			history: core.DomainEvents{
				given.CopyAdded(t, copyID, titleID, today.AddDate(0, -1, 0)),
				given.CopyLent(t, copyID, titleID, borrowerID, today.AddDate(0, 0, -3)),
				given.CopyReturned(t, copyID, titleID, borrowerID, today.AddDate(0, 0, -1)),
			},
			expectedErr: core.ErrNotOnLoan,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result, _ := returnbookcopy.Decide(tc.history, returnbookcopy.BuildCommand(copyID.String(), today))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.False(t, result.HasEventsToAppend())
		})
	}
}
