package eventstore

// Logger is the logging surface the engines need.
// It is satisfied by *slog.Logger.
//
// Debug: executed SQL with timing
// Info: event counts, durations, concurrency conflicts
// Warn: non-critical problems like failing to close rows
// Error: failures that make an operation fail
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
