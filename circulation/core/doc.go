// Package core holds the circulation domain events, the decision result of the pure
// Decide functions, the sentinel errors and the calendar helpers shared by all features.
//
// Nothing in here does I/O.
package core
