// Package registerborrower registers a borrower. Borrower names are unique (case-insensitive)
// because loans and returns look borrowers up by name.
package registerborrower
