package shell

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

const (
	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgQueryCompleted is logged when query processing succeeds.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing fails.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrCommandType identifies the command type in logs.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType identifies the query type in logs.
	LogAttrQueryType = "query_type"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrBusinessOutcome classifies the business result: success, idempotent or a rejection.
	LogAttrBusinessOutcome = "business_outcome"

	// LogAttrRetryAttempts is the number of attempts a command needed.
	LogAttrRetryAttempts = "retry_attempts"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// LogAttrEventCount indicates the number of events processed.
	LogAttrEventCount = "event_count"
)

const (
	outcomeSuccess    = "success"
	outcomeIdempotent = "idempotent"
	outcomeRejected   = "rejected"
	outcomeFailed     = "failed"
)

// IsBusinessRejection reports whether err is one of the expected circulation errors
// rather than an infrastructure failure.
func IsBusinessRejection(err error) bool {
	for _, rejection := range []error{
		core.ErrBorrowerNotFound,
		core.ErrBookNotFound,
		core.ErrLoanNotFound,
		core.ErrReservationNotFound,
		core.ErrNotAvailable,
		core.ErrNotOnLoan,
		core.ErrBorrowerAlreadyRegistered,
		core.ErrTitleAlreadyInCatalogue,
	} {
		if errors.Is(err, rejection) {
			return true
		}
	}

	return false
}

// LogCommandOutcome logs the result of a command handler call. Business rejections are logged at Info,
// infrastructure failures at Error.
func LogCommandOutcome(logger eventstore.Logger, commandType string, result HandlerResult, err error, duration time.Duration) {
	if logger == nil {
		return
	}

	durationMS := toMilliseconds(duration)

	switch {
	case err == nil:
		outcome := outcomeSuccess
		if result.Idempotent {
			outcome = outcomeIdempotent
		}

		logger.Info(
			LogMsgCommandCompleted,
			LogAttrCommandType, commandType,
			LogAttrBusinessOutcome, outcome,
			LogAttrRetryAttempts, result.RetryAttempts,
			LogAttrDurationMS, durationMS,
		)

	case IsBusinessRejection(err):
		logger.Info(
			LogMsgCommandCompleted,
			LogAttrCommandType, commandType,
			LogAttrBusinessOutcome, outcomeRejected,
			LogAttrError, err.Error(),
			LogAttrRetryAttempts, result.RetryAttempts,
			LogAttrDurationMS, durationMS,
		)

	default:
		logger.Error(
			LogMsgCommandFailed,
			LogAttrCommandType, commandType,
			LogAttrBusinessOutcome, outcomeFailed,
			LogAttrError, err.Error(),
			LogAttrRetryAttempts, result.RetryAttempts,
			LogAttrDurationMS, durationMS,
		)
	}
}

// LogQueryOutcome logs the result of a query handler call.
func LogQueryOutcome(logger eventstore.Logger, queryType string, eventCount int, err error, duration time.Duration) {
	if logger == nil {
		return
	}

	if err != nil && !IsBusinessRejection(err) {
		logger.Error(LogMsgQueryFailed, LogAttrQueryType, queryType, LogAttrError, err.Error())
		return
	}

	logger.Debug(
		LogMsgQueryCompleted,
		LogAttrQueryType, queryType,
		LogAttrEventCount, eventCount,
		LogAttrDurationMS, toMilliseconds(duration),
	)
}

func toMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
