package registerborrower

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	commandType = "RegisterBorrower"
)

// Command represents the intent to register a borrower.
type Command struct {
	BorrowerID   uuid.UUID
	Name         string
	EmailAddress string
	OccurredAt   core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters, name and email trimmed.
func BuildCommand(borrowerID uuid.UUID, name string, emailAddress string, occurredAt time.Time) Command {
	return Command{
		BorrowerID:   borrowerID,
		Name:         strings.TrimSpace(name),
		EmailAddress: strings.TrimSpace(emailAddress),
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
