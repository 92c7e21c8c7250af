package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/cache"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/events"
	"github.com/kawaf/petcafe-service/internal/repository"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// EventCreateInput carries fields for a new event.
type EventCreateInput struct {
	Title       string
	Description *string
	Date        time.Time
	PhotoURL    *string
	Location    *string
}

// EventUpdateInput carries partial updates; nil fields are unchanged.
type EventUpdateInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	PhotoURL    *string
	Location    *string
}

// EventService gates event access by policy and delegates to the
// resource store.
type EventService struct {
	store      repository.EventRepository
	listings   *cache.ListingCache
	dispatcher events.Dispatcher
}

// NewEventService builds the service.
func NewEventService(store repository.EventRepository, listings *cache.ListingCache, dispatcher events.Dispatcher) *EventService {
	return &EventService{store: store, listings: listings, dispatcher: dispatcher}
}

// List returns events visible to the caller. Without view-all
// privilege, events more than seven days past are hidden.
func (s *EventService) List(ctx context.Context, status domain.AuthStatus) ([]domain.Event, error) {
	if auth.CanViewAllEvents(status.Role) {
		items, err := s.store.List(ctx, repository.EventFilter{})
		if err != nil {
			return nil, util.NewInternalError(err)
		}
		return items, nil
	}

	var cached []domain.Event
	if s.listings.Get(ctx, cache.KeyPublicEvents, &cached) {
		return cached, nil
	}

	threshold := domain.PublicEventThreshold(time.Now())
	items, err := s.store.List(ctx, repository.EventFilter{Since: &threshold})
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	s.listings.Set(ctx, cache.KeyPublicEvents, items)
	return items, nil
}

// Get returns a single event. Reads are public.
func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("event")
		}
		return nil, util.NewInternalError(err)
	}
	return event, nil
}

// Create adds an event for any authenticated caller.
func (s *EventService) Create(ctx context.Context, status domain.AuthStatus, input EventCreateInput) (*domain.Event, error) {
	if !auth.CanMutateEvents(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		PhotoURL:    input.PhotoURL,
		Location:    input.Location,
	}

	if err := s.store.Create(ctx, event); err != nil {
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventEventChanged, events.MutationCreated, event.ID))
	return event, nil
}

// Update applies a partial update after an existence check.
func (s *EventService) Update(ctx context.Context, status domain.AuthStatus, id int64, input EventUpdateInput) (*domain.Event, error) {
	if !auth.CanMutateEvents(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("event")
		}
		return nil, util.NewInternalError(err)
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = input.Description
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.PhotoURL != nil {
		event.PhotoURL = input.PhotoURL
	}
	if input.Location != nil {
		event.Location = input.Location
	}

	if err := s.store.Update(ctx, event); err != nil {
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventEventChanged, events.MutationUpdated, event.ID))
	return event, nil
}

// Delete removes an event after an existence check.
func (s *EventService) Delete(ctx context.Context, status domain.AuthStatus, id int64) error {
	if !auth.CanMutateEvents(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("event")
		}
		return util.NewInternalError(err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("event")
		}
		return util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventEventChanged, events.MutationDeleted, id))
	return nil
}
