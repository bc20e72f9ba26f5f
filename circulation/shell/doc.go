// Package shell holds the imperative plumbing around the pure circulation core:
// mapping domain events to and from storable events, event metadata,
// and the retry loop that re-runs a command on optimistic concurrency conflicts.
package shell
