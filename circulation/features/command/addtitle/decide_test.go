package addtitle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/addtitle"
	"github.com/AntonStoeckl/circulation-engine-go/testutil/given"
)

func Test_Decide_Adds_A_New_Title(t *testing.T) {
	// arrange
	now := time.Now()
	titleID := given.NewID(t)
	command := addtitle.BuildCommand(titleID, "Lord of the Rings", "JRR Tolkien", "978-0261103252", core.Hardback, now)

	// act
	result := addtitle.Decide(core.DomainEvents{}, command)

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)
	added, ok := result.Events[0].(core.TitleAddedToCatalogue)
	require.True(t, ok)
	assert.Equal(t, titleID.String(), added.TitleID)
	assert.Equal(t, core.Hardback, added.Format)
}

func Test_Decide_Idempotent_When_The_Title_Id_Exists(t *testing.T) {
	// arrange
	now := time.Now()
	titleID := given.NewID(t)
	history := core.DomainEvents{given.TitleAdded(t, titleID, "Lord of the Rings", "JRR Tolkien", now.Add(-time.Hour))}

	// act
	result := addtitle.Decide(history, addtitle.BuildCommand(titleID, "Lord of the Rings", "JRR Tolkien", "", core.Paperback, now))

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Rejects_The_Same_Name_And_Author_Under_Another_Id(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{given.TitleAdded(t, given.NewID(t), "Lord of the Rings", "JRR Tolkien", now.Add(-time.Hour))}

	// act
	result := addtitle.Decide(history, addtitle.BuildCommand(given.NewID(t), "lord of the rings", "jrr tolkien", "", core.Paperback, now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrTitleAlreadyInCatalogue)
}
