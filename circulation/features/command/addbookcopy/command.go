package addbookcopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	commandType = "AddBookCopy"
)

// Command represents the intent to add a copy of a title to circulation.
type Command struct {
	CopyID     uuid.UUID
	TitleID    uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(copyID uuid.UUID, titleID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		CopyID:     copyID,
		TitleID:    titleID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
