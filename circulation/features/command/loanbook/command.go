package loanbook

import (
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	commandType = "LoanBook"
)

// Command represents the intent of a borrower to loan a copy of a title.
type Command struct {
	TitleID    core.TitleIDString
	BorrowerID core.BorrowerIDString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(titleID core.TitleIDString, borrowerID core.BorrowerIDString, occurredAt time.Time) Command {
	return Command{
		TitleID:    titleID,
		BorrowerID: borrowerID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
