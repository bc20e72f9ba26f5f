package borrowers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/borrowers"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/given"
)

func Test_Project_Sums_The_Fines_Of_Each_Borrower(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	chris, sally, titleID, copyID := given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.BorrowerRegistered(t, chris, "Chris Barrett", day),
		given.BorrowerRegistered(t, sally, "Sally Walker", day),
		given.FineCharged(t, chris, titleID, copyID, "5.25", day.AddDate(0, 0, 3)),
		given.FineCharged(t, chris, titleID, copyID, "3.75", day.AddDate(0, 0, 9)),
	}

	// act
	result := borrowers.Project(history, 4)

	// assert
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "9.00", result.Borrowers[0].FinesOwed.StringFixed(2))
	assert.True(t, result.Borrowers[1].FinesOwed.IsZero())
}

func Test_FindByName(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	dave := given.NewID(t)
	directory := borrowers.Project(core.DomainEvents{given.BorrowerRegistered(t, dave, "Dave Smith", day)}, 1)

	// act
	found, err := directory.FindByName("  dave SMITH ")
	_, missingErr := directory.FindByName("Dave")

	// assert
	require.NoError(t, err)
	assert.Equal(t, dave.String(), found.BorrowerID)
	assert.ErrorIs(t, missingErr, core.ErrBorrowerNotFound)
	assert.Equal(t, "Dave Smith", directory.NameOf(dave.String()))
	assert.Equal(t, "unknown", directory.NameOf("unknown"))
}
