// Package returnbook implements the Return Book use case: a borrower hands back their copy of a title.
//
// The copy is checked in and, when it comes back after its loan end date, a fine is charged.
// Both events go into one append, so a fine never exists without the return and vice versa.
package returnbook
