// Package engine is the entry point of the circulation engine.
//
// It resolves borrower and title names through the read models, runs the matching
// command handler and turns the outcome into the message shown to the borrower.
// Every command outcome and every retry is logged when a logger is configured.
package engine
