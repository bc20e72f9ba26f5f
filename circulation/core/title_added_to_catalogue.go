package core

import (
	"time"

	"github.com/google/uuid"
)

// TitleAddedToCatalogueEventType is the event type identifier.
const TitleAddedToCatalogueEventType = "TitleAddedToCatalogue"

// TitleAddedToCatalogue represents when a title was added to the catalogue.
type TitleAddedToCatalogue struct {
	EventType  EventTypeString
	TitleID    TitleIDString
	Name       string
	Author     string
	ISBN       string
	Format     BookFormat
	OccurredAt OccurredAt
}

// BuildTitleAddedToCatalogue creates a new TitleAddedToCatalogue event.
func BuildTitleAddedToCatalogue(
	titleID uuid.UUID,
	name string,
	author string,
	isbn string,
	format BookFormat,
	occurredAt time.Time,
) TitleAddedToCatalogue {

	return TitleAddedToCatalogue{
		EventType:  TitleAddedToCatalogueEventType,
		TitleID:    titleID.String(),
		Name:       name,
		Author:     author,
		ISBN:       isbn,
		Format:     format,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e TitleAddedToCatalogue) IsEventType() string {
	return TitleAddedToCatalogueEventType
}

// HasOccurredAt returns when this event occurred.
func (e TitleAddedToCatalogue) HasOccurredAt() time.Time {
	return e.OccurredAt
}
