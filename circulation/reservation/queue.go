// Package reservation is the per-title FIFO of borrowers waiting for a copy,
// projected from ReservationPlaced and ReservationFulfilled events.
//
// Reservations are ordered by request time, ties broken by insertion order.
// A rank is the 1-indexed position in that order.
package reservation

import (
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

// Reservation is one pending request for a title.
type Reservation struct {
	TitleID     core.TitleIDString
	BorrowerID  core.BorrowerIDString
	RequestedAt time.Time
}

// Queue holds the pending reservations of any number of titles.
type Queue struct {
	byTitle map[core.TitleIDString][]Reservation
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{byTitle: make(map[core.TitleIDString][]Reservation)}
}

// Project replays the history into a new Queue. Unrelated events are ignored.
func Project(history core.DomainEvents) *Queue {
	q := New()

	for _, event := range history {
		q.Apply(event)
	}

	return q
}

// Apply folds one event into the queue.
func (q *Queue) Apply(event core.DomainEvent) {
	switch e := event.(type) {
	case core.ReservationPlaced:
		q.insert(Reservation{TitleID: e.TitleID, BorrowerID: e.BorrowerID, RequestedAt: e.OccurredAt})

	case core.ReservationFulfilled:
		q.remove(e.TitleID, e.BorrowerID)
	}
}

// Enqueue appends a reservation and returns the event to append together with its rank.
// The request time is clamped to the queue tail's, so a new reservation always lands last
// and no rank that was already handed out moves.
func (q *Queue) Enqueue(
	titleID core.TitleIDString,
	borrowerID core.BorrowerIDString,
	at time.Time,
) (core.ReservationPlaced, int) {

	event := core.BuildReservationPlaced(titleID, borrowerID, at)

	if queue := q.byTitle[titleID]; len(queue) > 0 {
		if tail := queue[len(queue)-1].RequestedAt; tail.After(event.OccurredAt) {
			event = core.BuildReservationPlaced(titleID, borrowerID, tail)
		}
	}

	rank := q.insert(Reservation{TitleID: titleID, BorrowerID: borrowerID, RequestedAt: event.OccurredAt})

	return event, rank
}

// RankOf returns the 1-indexed position of the borrower's earliest reservation for the title.
func (q *Queue) RankOf(titleID core.TitleIDString, borrowerID core.BorrowerIDString) (int, error) {
	for i, r := range q.byTitle[titleID] {
		if r.BorrowerID == borrowerID {
			return i + 1, nil
		}
	}

	return 0, core.ErrReservationNotFound
}

// Dequeue removes the borrower's reservation for the title, if there is one,
// and returns the event recording that the borrower received copyID.
func (q *Queue) Dequeue(
	titleID core.TitleIDString,
	borrowerID core.BorrowerIDString,
	copyID core.CopyIDString,
	at time.Time,
) (core.ReservationFulfilled, bool) {

	if !q.remove(titleID, borrowerID) {
		return core.ReservationFulfilled{}, false
	}

	return core.BuildReservationFulfilled(titleID, borrowerID, copyID, at), true
}

// Size returns the number of pending reservations for the title.
func (q *Queue) Size(titleID core.TitleIDString) int {
	return len(q.byTitle[titleID])
}

// Reservations returns the pending reservations of the title in rank order.
func (q *Queue) Reservations(titleID core.TitleIDString) []Reservation {
	return append([]Reservation(nil), q.byTitle[titleID]...)
}

// insert places r after every reservation requested at or before it and returns its rank.
func (q *Queue) insert(r Reservation) int {
	queue := q.byTitle[r.TitleID]

	pos := len(queue)
	for pos > 0 && queue[pos-1].RequestedAt.After(r.RequestedAt) {
		pos--
	}

	queue = append(queue, Reservation{})
	copy(queue[pos+1:], queue[pos:])
	queue[pos] = r
	q.byTitle[r.TitleID] = queue

	return pos + 1
}

// remove drops the borrower's earliest reservation for the title.
func (q *Queue) remove(titleID core.TitleIDString, borrowerID core.BorrowerIDString) bool {
	queue := q.byTitle[titleID]

	for i, r := range queue {
		if r.BorrowerID == borrowerID {
			q.byTitle[titleID] = append(queue[:i:i], queue[i+1:]...)
			return true
		}
	}

	return false
}
