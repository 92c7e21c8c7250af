package domain

import "time"

// MenuItem is a cafe menu entry. Names are unique across the menu.
type MenuItem struct {
	ID          int64
	Name        string
	Description *string
	Price       string
	PhotoURL    *string
	Popularity  int
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
