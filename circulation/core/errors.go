package core

import "errors"

var (
	ErrBorrowerNotFound          = errors.New("borrower not found")
	ErrBookNotFound              = errors.New("book not found")
	ErrLoanNotFound              = errors.New("loan not found")
	ErrReservationNotFound       = errors.New("reservation not found")
	ErrNotAvailable              = errors.New("book copy is not available")
	ErrNotOnLoan                 = errors.New("book copy is not on loan")
	ErrBorrowerAlreadyRegistered = errors.New("a borrower with this name is already registered")
	ErrTitleAlreadyInCatalogue   = errors.New("this title is already in the catalogue")
)
