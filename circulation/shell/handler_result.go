package shell

import "time"

// HandlerResult carries the outcome of a command handler execution
// together with what the retry loop did to get there.
type HandlerResult struct {
	// Idempotent is true when the command needed no state change.
	Idempotent bool

	// RetryAttempts is 1 when the first attempt went through.
	RetryAttempts int

	// TotalRetryDelay only counts time spent in backoff.
	TotalRetryDelay time.Duration

	LastErrorType    string
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for a command that appended events.
func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(retryMetrics, false)
}

// NewIdempotentResult creates a HandlerResult for a command that appended nothing.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(retryMetrics, true)
}

// NewErrorResult creates a HandlerResult for a failed command, keeping its retry metadata.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(retryMetrics, false)
}

func newResult(retryMetrics RetryMetrics, idempotent bool) HandlerResult {
	return HandlerResult{
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
