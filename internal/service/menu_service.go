package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/cache"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/events"
	"github.com/kawaf/petcafe-service/internal/repository"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// MenuCreateInput carries fields for a new menu item.
type MenuCreateInput struct {
	Name        string
	Description *string
	Price       string
	PhotoURL    *string
	Popularity  *int
	IsAvailable *bool
}

// MenuUpdateInput carries partial updates; nil fields are unchanged.
type MenuUpdateInput struct {
	Name        *string
	Description *string
	Price       *string
	PhotoURL    *string
	Popularity  *int
	IsAvailable *bool
}

// MenuService gates menu access by policy and delegates to the
// resource store.
type MenuService struct {
	items      repository.MenuItemRepository
	listings   *cache.ListingCache
	dispatcher events.Dispatcher
}

// NewMenuService builds the service.
func NewMenuService(items repository.MenuItemRepository, listings *cache.ListingCache, dispatcher events.Dispatcher) *MenuService {
	return &MenuService{items: items, listings: listings, dispatcher: dispatcher}
}

// List returns menu items visible to the caller; without view-all
// privilege only available items appear.
func (s *MenuService) List(ctx context.Context, status domain.AuthStatus) ([]domain.MenuItem, error) {
	if auth.CanViewAllMenuItems(status.Role) {
		items, err := s.items.List(ctx, repository.MenuFilter{})
		if err != nil {
			return nil, util.NewInternalError(err)
		}
		return items, nil
	}

	var cached []domain.MenuItem
	if s.listings.Get(ctx, cache.KeyPublicMenuItems, &cached) {
		return cached, nil
	}

	items, err := s.items.List(ctx, repository.MenuFilter{AvailableOnly: true})
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	s.listings.Set(ctx, cache.KeyPublicMenuItems, items)
	return items, nil
}

// Get returns a single menu item. Reads are public.
func (s *MenuService) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("menu item")
		}
		return nil, util.NewInternalError(err)
	}
	return item, nil
}

// Create adds a menu item. Item names are unique; duplicates surface
// as a conflict rather than an opaque failure.
func (s *MenuService) Create(ctx context.Context, status domain.AuthStatus, input MenuCreateInput) (*domain.MenuItem, error) {
	if !auth.CanMutateMenuItems(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	item := &domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		PhotoURL:    input.PhotoURL,
		IsAvailable: true,
	}
	if input.Popularity != nil {
		item.Popularity = *input.Popularity
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.items.Create(ctx, item); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflict("an item with this name already exists")
		}
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventMenuItemChanged, events.MutationCreated, item.ID))
	return item, nil
}

// Update applies a partial update after an existence check.
func (s *MenuService) Update(ctx context.Context, status domain.AuthStatus, id int64, input MenuUpdateInput) (*domain.MenuItem, error) {
	if !auth.CanMutateMenuItems(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("menu item")
		}
		return nil, util.NewInternalError(err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.PhotoURL != nil {
		item.PhotoURL = input.PhotoURL
	}
	if input.Popularity != nil {
		item.Popularity = *input.Popularity
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.items.Update(ctx, item); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflict("an item with this name already exists")
		}
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventMenuItemChanged, events.MutationUpdated, item.ID))
	return item, nil
}

// Delete removes a menu item after an existence check.
func (s *MenuService) Delete(ctx context.Context, status domain.AuthStatus, id int64) error {
	if !auth.CanMutateMenuItems(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	if _, err := s.items.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("menu item")
		}
		return util.NewInternalError(err)
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("menu item")
		}
		return util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventMenuItemChanged, events.MutationDeleted, id))
	return nil
}
