package domain

import "time"

// Event is a scheduled cafe happening.
type Event struct {
	ID          int64
	Title       string
	Description *string
	Date        time.Time
	PhotoURL    *string
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublicEventThreshold is the oldest event date shown to callers
// without view-all privilege: seven days in the past.
func PublicEventThreshold(now time.Time) time.Time {
	return now.Add(-7 * 24 * time.Hour)
}
