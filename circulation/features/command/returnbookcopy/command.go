package returnbookcopy

import (
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	commandType = "ReturnBookCopy"
)

// Command represents the return of a single physical copy.
type Command struct {
	CopyID     core.CopyIDString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(copyID core.CopyIDString, occurredAt time.Time) Command {
	return Command{
		CopyID:     copyID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
