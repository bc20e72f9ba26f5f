// Package logspy captures slog records so tests can assert on what was logged.
package logspy

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// Handler is a slog.Handler that keeps every record it receives.
type Handler struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// New creates a Handler. logToStdout additionally writes JSON to stdout, handy when debugging a test.
func New(logToStdout bool) *Handler {
	return &Handler{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdout,
	}
}

// Logger wraps the handler in a *slog.Logger.
func (h *Handler) Logger() *slog.Logger {
	return slog.New(h)
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record.Clone())

	if h.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. Attributes are not tracked.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

// HasMessage reports whether any record with the given message and level was captured.
func (h *Handler) HasMessage(level slog.Level, msg string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, record := range h.records {
		if record.Level == level && record.Message == msg {
			return true
		}
	}

	return false
}

// Count returns the number of captured records with the given message.
func (h *Handler) Count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, record := range h.records {
		if record.Message == msg {
			n++
		}
	}

	return n
}

// Reset drops all captured records.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = h.records[:0]
}
