package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAnimalChanged   EventType = "animal_changed"
	EventMenuItemChanged EventType = "menu_item_changed"
	EventEventChanged    EventType = "event_changed"
	EventUserChanged     EventType = "user_changed"
)

// Mutation identifies the kind of change that occurred.
type Mutation string

const (
	MutationCreated Mutation = "created"
	MutationUpdated Mutation = "updated"
	MutationDeleted Mutation = "deleted"
)

// Event represents a resource mutation emitted by services.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Mutation   Mutation  `json:"mutation"`
	ResourceID int64     `json:"resource_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewEvent builds a mutation event with a fresh identifier.
func NewEvent(eventType EventType, mutation Mutation, resourceID int64) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Mutation:   mutation,
		ResourceID: resourceID,
		Timestamp:  time.Now(),
	}
}
