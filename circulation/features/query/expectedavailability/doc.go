// Package expectedavailability answers "when will I get this title?" for a borrower in its reservation queue.
package expectedavailability
