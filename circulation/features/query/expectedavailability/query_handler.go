package expectedavailability

import (
	"context"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/availability"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// QueryHandler runs availability predictions.
type QueryHandler struct {
	eventStore shell.EventQuerier
	logger     eventstore.Logger
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithLogging logs every query outcome.
func WithLogging(logger eventstore.Logger) Option {
	return func(h *QueryHandler) {
		h.logger = logger
	}
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.EventQuerier, opts ...Option) QueryHandler {
	h := QueryHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Handle predicts the availability for query. It only reads, so asking twice gives the same answer.
func (h QueryHandler) Handle(ctx context.Context, query Query) (availability.Prediction, error) {
	return shell.RunQuery(
		ctx,
		h.eventStore,
		h.logger,
		query.QueryType(),
		BuildEventFilter(query.TitleID),
		func(history core.DomainEvents, _ eventstore.MaxSequenceNumberUint) (availability.Prediction, error) {
			return Project(history, query)
		},
	)
}
