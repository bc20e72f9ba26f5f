package catalogue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/catalogue"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/given"
)

func Test_Project_Lists_Matching_Copies_With_Their_State(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	hobbit, lotr, copy1, copy2, copy3, dave := given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.TitleAdded(t, hobbit, "The Hobbit", "JRR Tolkien", day),
		given.TitleAdded(t, lotr, "Lord of the Rings", "JRR Tolkien", day),
		given.CopyAdded(t, copy1, hobbit, day),
		given.CopyAdded(t, copy2, lotr, day),
		given.CopyAdded(t, copy3, lotr, day),
		given.BorrowerRegistered(t, dave, "Dave Smith", day),
		given.CopyLent(t, copy3, lotr, dave, day),
	}

	// act
	result := catalogue.Project(history, catalogue.BuildQuery("rings", "tolkien"), 7)

	// assert
	require.Len(t, result.Titles, 1)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, copy2.String(), result.Entries[0].CopyID)
	assert.True(t, result.Entries[0].Available)
	assert.False(t, result.Entries[1].Available)
	assert.Equal(t, "Dave Smith", result.Entries[1].OnLoanTo)
	assert.Equal(t, given.Day(2026, time.March, 9), result.Entries[1].LoanEndDate)
	assert.Equal(t, uint(7), result.SequenceNumber)
}

func Test_Project_With_Empty_Terms_Matches_Everything(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	history := core.DomainEvents{
		given.TitleAdded(t, given.NewID(t), "The Hobbit", "JRR Tolkien", day),
		given.TitleAdded(t, given.NewID(t), "Dune", "Frank Herbert", day),
	}

	// act
	result := catalogue.Project(history, catalogue.BuildQuery("", ""), 2)

	// assert
	assert.Len(t, result.Titles, 2)
}

func Test_Resolve(t *testing.T) {
	day := given.Day(2026, time.March, 2)
	longer, exact, empty := given.NewID(t), given.NewID(t), given.NewID(t)

	history := core.DomainEvents{
		given.TitleAdded(t, longer, "The Hobbit Companion", "JRR Tolkien", day),
		given.TitleAdded(t, exact, "The Hobbit", "JRR Tolkien", day),
		given.TitleAdded(t, empty, "Silmarillion", "JRR Tolkien", day),
		given.CopyAdded(t, given.NewID(t), longer, day),
		given.CopyAdded(t, given.NewID(t), exact, day),
	}

	t.Run("exact match wins over an earlier substring match", func(t *testing.T) {
		title, err := catalogue.Project(history, catalogue.BuildQuery("the hobbit", "tolkien"), 0).Resolve("the hobbit", "jrr tolkien")

		require.NoError(t, err)
		assert.Equal(t, exact.String(), title.TitleID)
	})

	t.Run("first substring match otherwise", func(t *testing.T) {
		title, err := catalogue.Project(history, catalogue.BuildQuery("hobbit", "tolkien"), 0).Resolve("hobbit", "tolkien")

		require.NoError(t, err)
		assert.Equal(t, longer.String(), title.TitleID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := catalogue.Project(history, catalogue.BuildQuery("Dune", ""), 0).Resolve("Dune", "")

		assert.ErrorIs(t, err, core.ErrBookNotFound)
	})

	t.Run("title without copies", func(t *testing.T) {
		_, err := catalogue.Project(history, catalogue.BuildQuery("Silmarillion", "JRR Tolkien"), 0).Resolve("Silmarillion", "JRR Tolkien")

		assert.ErrorIs(t, err, core.ErrBookNotFound)
	})

	t.Run("find accepts a title without copies", func(t *testing.T) {
		title, err := catalogue.Project(history, catalogue.BuildQuery("Silmarillion", "JRR Tolkien"), 0).Find("Silmarillion", "JRR Tolkien")

		require.NoError(t, err)
		assert.Equal(t, empty.String(), title.TitleID)
	})
}

func Test_Resolve_Skips_Matching_Titles_Without_Copies(t *testing.T) {
	// arrange
	day := given.Day(2026, time.March, 2)
	withoutCopies, stocked := given.NewID(t), given.NewID(t)
	history := core.DomainEvents{
		given.TitleAdded(t, withoutCopies, "Dune Messiah", "Frank Herbert", day),
		given.TitleAdded(t, stocked, "Dune", "Frank Herbert", day),
		given.CopyAdded(t, given.NewID(t), stocked, day),
	}

	// act
	title, err := catalogue.Project(history, catalogue.BuildQuery("dune", "herbert"), 0).Resolve("dune", "herbert")

	// assert
	require.NoError(t, err)
	assert.Equal(t, stocked.String(), title.TitleID)
	assert.Len(t, title.Copies, 1)
}
