package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/reservation"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func placed(titleID string, borrowerID string, at time.Time) core.ReservationPlaced {
	return core.BuildReservationPlaced(titleID, borrowerID, at)
}

func Test_Enqueue_ReturnsIncreasingRanks(t *testing.T) {
	q := reservation.New()

	_, first := q.Enqueue("t-1", "b-1", now)
	_, second := q.Enqueue("t-1", "b-2", now.Add(time.Minute))
	_, otherTitle := q.Enqueue("t-2", "b-3", now.Add(2*time.Minute))
	event, third := q.Enqueue("t-1", "b-3", now.Add(3*time.Minute))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 1, otherTitle)
	assert.Equal(t, 3, third)
	assert.Equal(t, 3, q.Size("t-1"))
	assert.Equal(t, "t-1", event.TitleID)
	assert.Equal(t, "b-3", event.BorrowerID)
}

func Test_Enqueue_With_SameRequestTime_KeepsInsertionOrder(t *testing.T) {
	q := reservation.Project(core.DomainEvents{
		placed("t-1", "b-1", now),
		placed("t-1", "b-2", now),
	})

	_, rank := q.Enqueue("t-1", "b-3", now)

	assert.Equal(t, 3, rank)
	r1, _ := q.RankOf("t-1", "b-1")
	r2, _ := q.RankOf("t-1", "b-2")
	assert.Equal(t, 1, r1)
	assert.Equal(t, 2, r2)
}

func Test_Enqueue_With_EarlierRequestTime_ThanTheTail_LandsLast(t *testing.T) {
	// arrange
	q := reservation.New()
	_, first := q.Enqueue("t-1", "b-late", now.Add(time.Second))

	// act
	event, second := q.Enqueue("t-1", "b-early", now)

	// assert
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, now.Add(time.Second), event.OccurredAt)
	late, err := q.RankOf("t-1", "b-late")
	require.NoError(t, err)
	assert.Equal(t, 1, late)

	replayed := reservation.Project(core.DomainEvents{placed("t-1", "b-late", now.Add(time.Second)), event})
	early, err := replayed.RankOf("t-1", "b-early")
	require.NoError(t, err)
	assert.Equal(t, 2, early)
}

func Test_Project_OrdersByRequestTime(t *testing.T) {
	q := reservation.Project(core.DomainEvents{
		placed("t-1", "b-late", now.Add(time.Hour)),
		placed("t-1", "b-early", now),
	})

	early, err := q.RankOf("t-1", "b-early")
	require.NoError(t, err)
	late, err := q.RankOf("t-1", "b-late")
	require.NoError(t, err)

	assert.Equal(t, 1, early)
	assert.Equal(t, 2, late)
}

func Test_RankOf_When_BorrowerHasNoReservation(t *testing.T) {
	q := reservation.Project(core.DomainEvents{placed("t-1", "b-1", now)})

	_, err := q.RankOf("t-1", "b-2")
	_, otherTitleErr := q.RankOf("t-2", "b-1")

	assert.ErrorIs(t, err, core.ErrReservationNotFound)
	assert.ErrorIs(t, otherTitleErr, core.ErrReservationNotFound)
}

func Test_Dequeue_ReleasesThePosition(t *testing.T) {
	// arrange
	q := reservation.Project(core.DomainEvents{
		placed("t-1", "b-1", now),
		placed("t-1", "b-2", now.Add(time.Minute)),
		placed("t-1", "b-3", now.Add(2*time.Minute)),
	})

	// act
	event, ok := q.Dequeue("t-1", "b-1", "c-1", now.Add(time.Hour))

	// assert
	require.True(t, ok)
	assert.Equal(t, "c-1", event.CopyID)
	assert.Equal(t, 2, q.Size("t-1"))
	rank, err := q.RankOf("t-1", "b-3")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}

func Test_Dequeue_When_NoReservation(t *testing.T) {
	q := reservation.New()

	_, ok := q.Dequeue("t-1", "b-1", "c-1", now)

	assert.False(t, ok)
}

func Test_Apply_ReservationFulfilled_RemovesTheReservation(t *testing.T) {
	q := reservation.Project(core.DomainEvents{
		placed("t-1", "b-1", now),
		core.BuildReservationFulfilled("t-1", "b-1", "c-1", now.Add(time.Hour)),
	})

	assert.Equal(t, 0, q.Size("t-1"))
	assert.Empty(t, q.Reservations("t-1"))
}
