package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runMemory(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-engine", "memory", "-log-level", "error"}, args...), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func Test_Run_Loans_Shows_The_Seeded_Loans(t *testing.T) {
	// act
	code, stdout, _ := runMemory(t, "loans")

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Chris Barrett")
	assert.Contains(t, stdout, "Marvel Civil War; Avengers vs. X-Men")
	assert.Contains(t, stdout, "Dave Smith")
	assert.Contains(t, stdout, "Liana James")
	assert.NotContains(t, stdout, "Rust Development Cookbook")
}

func Test_Run_Borrowers_Shows_The_Seeded_Fine(t *testing.T) {
	// act
	code, stdout, _ := runMemory(t, "borrowers")

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "5.25")
}

func Test_Run_Loan_Lends_The_Free_Copy(t *testing.T) {
	// act
	code, stdout, _ := runMemory(t, "loan", "-title", "clay", "-borrower", "Liana James")

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Book successfully loaned")
}

func Test_Run_Return_Of_An_Overdue_Book_Charges_A_Fine(t *testing.T) {
	// act
	code, stdout, _ := runMemory(t, "return", "-title", "Civil War", "-borrower", "Chris Barrett")

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Book successfully returned, thank you!")
	assert.Contains(t, stdout, "8.25")
}

func Test_Run_Availability_Without_Reservation_Explains_Why(t *testing.T) {
	// act
	code, stdout, stderr := runMemory(t, "availability", "-title", "Agile", "-borrower", "Dave Smith")

	// assert
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no reservation")
}

func Test_Run_Unknown_Command_Prints_Usage(t *testing.T) {
	// act
	code, _, stderr := runMemory(t, "renew")

	// assert
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")
	assert.Contains(t, stderr, "commands:")
}

func Test_Run_Help(t *testing.T) {
	// act
	code, stdout, _ := runMemory(t)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "return-copy")
}
