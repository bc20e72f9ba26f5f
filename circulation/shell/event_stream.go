package shell

import (
	"context"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// QueryHistory runs the Query and Unmarshal phases for filter.
func QueryHistory(ctx context.Context, es EventQuerier, filter eventstore.Filter) (
	core.DomainEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	storableEvents, maxSequenceNumber, err := es.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return history, maxSequenceNumber, nil
}

// AppendDecision runs the Append phase for a successful decision.
// All events of the decision go into one atomic append guarded by maxSequenceNumber.
func AppendDecision(
	ctx context.Context,
	es EventStore,
	filter eventstore.Filter,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
	result core.DecisionResult,
) error {

	if !result.HasEventsToAppend() {
		return nil
	}

	commandID := NewMessageID()

	storableEvents, err := StorableEventsFrom(result.Events, commandID, CorrelationIDFrom(ctx, commandID))
	if err != nil {
		return err
	}

	return es.Append(ctx, filter, maxSequenceNumber, storableEvents...)
}

// Decider is the pure Decide phase of one command, closed over the command.
type Decider[O any] func(history core.DomainEvents) (core.DecisionResult, O)

// ExecuteOnce runs one Query -> Unmarshal -> Decide -> Append cycle against the stream selected by filter.
// It reports whether the decision was idempotent; business errors of the decision are returned as is.
func ExecuteOnce[O any](
	ctx context.Context,
	es EventStore,
	filter eventstore.Filter,
	decide Decider[O],
) (O, bool, error) {

	var none O

	history, maxSequenceNumber, err := QueryHistory(ctx, es, filter)
	if err != nil {
		return none, false, err
	}

	result, outcome := decide(history)

	if err = result.HasError(); err != nil {
		return none, false, err
	}

	if result.IsIdempotent() {
		return outcome, true, nil
	}

	if err = AppendDecision(ctx, es, filter, maxSequenceNumber, result); err != nil {
		return none, false, err
	}

	return outcome, false, nil
}

// Projector turns the history of a query's stream into its read model.
type Projector[R any] func(history core.DomainEvents, maxSequenceNumber eventstore.MaxSequenceNumberUint) (R, error)

// RunQuery runs Query -> Unmarshal -> Project for a read model and logs the outcome.
func RunQuery[R any](
	ctx context.Context,
	es EventQuerier,
	logger eventstore.Logger,
	queryType string,
	filter eventstore.Filter,
	project Projector[R],
) (R, error) {

	var none R
	start := time.Now()

	history, maxSequenceNumber, err := QueryHistory(ctx, es, filter)
	if err != nil {
		LogQueryOutcome(logger, queryType, 0, err, time.Since(start))
		return none, err
	}

	result, err := project(history, maxSequenceNumber)
	LogQueryOutcome(logger, queryType, len(history), err, time.Since(start))

	if err != nil {
		return none, err
	}

	return result, nil
}
