package loans

import (
	"context"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// QueryHandler runs loans overview queries.
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

// Handle returns the active loans grouped by borrower.
func (h QueryHandler) Handle(ctx context.Context) (Loans, error) {
	return shell.RunQuery(
		ctx,
		h.eventStore,
		h.logger,
		queryType,
		BuildEventFilter(),
		func(history core.DomainEvents, maxSequence eventstore.MaxSequenceNumberUint) (Loans, error) {
			return Project(history, maxSequence), nil
		},
	)
}
