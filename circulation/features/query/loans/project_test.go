package loans_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/loans"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/given"
)

func Test_Project_Groups_Active_Loans_By_Borrower_In_Loan_Order(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	hobbit, dune, hobbitCopy, duneCopy1, duneCopy2 := given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t)
	dave, sally := given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.TitleAdded(t, hobbit, "The Hobbit", "JRR Tolkien", day),
		given.TitleAdded(t, dune, "Dune", "Frank Herbert", day),
		given.CopyAdded(t, hobbitCopy, hobbit, day),
		given.CopyAdded(t, duneCopy1, dune, day),
		given.CopyAdded(t, duneCopy2, dune, day),
		given.BorrowerRegistered(t, dave, "Dave Smith", day),
		given.BorrowerRegistered(t, sally, "Sally Walker", day),
		given.CopyLent(t, duneCopy1, dune, sally, day),
		given.CopyLent(t, hobbitCopy, hobbit, dave, day.AddDate(0, 0, 1)),
		given.CopyLent(t, duneCopy2, dune, sally, day.AddDate(0, 0, 2)),
	}

	// act
	result := loans.Project(history, 10)

	// assert
	require.Len(t, result.Borrowers, 2)
	assert.Equal(t, "Sally Walker", result.Borrowers[0].Borrower)
	assert.Equal(t, []string{"Dune", "Dune"}, result.Borrowers[0].Books)
	assert.Equal(t, "Dave Smith", result.Borrowers[1].Borrower)
	assert.Equal(t, []string{"The Hobbit"}, result.Borrowers[1].Books)
}

func Test_Project_Leaves_Out_Returned_Copies(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	hobbit, copyID, dave := given.NewID(t), given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.TitleAdded(t, hobbit, "The Hobbit", "JRR Tolkien", day),
		given.CopyAdded(t, copyID, hobbit, day),
		given.BorrowerRegistered(t, dave, "Dave Smith", day),
		given.CopyLent(t, copyID, hobbit, dave, day),
		given.CopyReturned(t, copyID, hobbit, dave, day.AddDate(0, 0, 3)),
	}

	// act
	result := loans.Project(history, 5)

	// assert
	assert.Empty(t, result.Borrowers)
}
