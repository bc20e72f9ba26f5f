package returnbook

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
)

// Result is the HandlerResult plus the return Outcome.
type Result struct {
	shell.HandlerResult
	Outcome
}

// CommandHandler runs Query -> Unmarshal -> Decide -> Append, retried on concurrency conflicts.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command. Exhausted retries surface as core.ErrNotOnLoan joined with the conflict.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	var outcome Outcome

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		outcome, _, execErr = shell.ExecuteOnce(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.TitleID, command.BorrowerID),
			func(history core.DomainEvents) (core.DecisionResult, Outcome) {
				return Decide(history, command)
			},
		)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		if retryMetrics.RetriesExhausted {
			err = errors.Join(core.ErrNotOnLoan, err)
		}

		return Result{HandlerResult: shell.NewErrorResult(retryMetrics)}, err
	}

	return Result{HandlerResult: shell.NewSuccessResult(retryMetrics), Outcome: outcome}, nil
}
