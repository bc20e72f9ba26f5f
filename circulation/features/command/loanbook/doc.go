// Package loanbook implements the Loan Book use case.
//
// A registered borrower asks for a title. If any copy is available the first one in
// ingestion order is lent until today plus the loan period, and a pending reservation of the
// same borrower for the title is fulfilled in the same append. Otherwise the borrower is
// queued; asking again while queued reports the existing rank without a new reservation.
package loanbook
