package dto

import (
	"time"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// MenuPayload covers create and update requests; all fields are
// optional so updates stay partial.
type MenuPayload struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *FlexDecimal `json:"price"`
	PhotoURL    *string      `json:"photoUrl"`
	Popularity  *FlexInt     `json:"popularity"`
	IsAvailable *bool        `json:"isAvailable"`
}

// MenuItemResponse is the wire shape for a menu item.
type MenuItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	PhotoURL    *string   `json:"photoUrl"`
	Popularity  int       `json:"popularity"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewMenuItemResponse maps a domain menu item to its wire shape.
func NewMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		PhotoURL:    item.PhotoURL,
		Popularity:  item.Popularity,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// NewMenuItemList maps a slice of domain menu items.
func NewMenuItemList(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMenuItemResponse(&items[i]))
	}
	return out
}
