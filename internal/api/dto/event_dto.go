package dto

import (
	"time"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// EventPayload covers create and update requests; all fields are
// optional so updates stay partial. Date arrives as a string and is
// validated by the handler.
type EventPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	PhotoURL    *string `json:"photoUrl"`
	Location    *string `json:"location"`
}

// ParseDate normalizes the payload date, accepting RFC 3339 or a bare
// calendar date.
func (p EventPayload) ParseDate() (time.Time, bool) {
	if p.Date == nil || *p.Date == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, *p.Date); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// EventResponse is the wire shape for an event.
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	PhotoURL    *string   `json:"photoUrl"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEventResponse maps a domain event to its wire shape.
func NewEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		PhotoURL:    e.PhotoURL,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// NewEventList maps a slice of domain events.
func NewEventList(items []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(items))
	for i := range items {
		out = append(out, NewEventResponse(&items[i]))
	}
	return out
}
