package addtitle

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
)

const (
	commandType = "AddTitle"
)

// Command represents the intent to add a title to the catalogue.
type Command struct {
	TitleID    uuid.UUID
	Name       string
	Author     string
	ISBN       string
	Format     core.BookFormat
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	titleID uuid.UUID,
	name string,
	author string,
	isbn string,
	format core.BookFormat,
	occurredAt time.Time,
) Command {

	return Command{
		TitleID:    titleID,
		Name:       name,
		Author:     author,
		ISBN:       isbn,
		Format:     format,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
