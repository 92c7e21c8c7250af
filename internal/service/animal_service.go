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

// AnimalCreateInput carries fields for a new animal record.
type AnimalCreateInput struct {
	Name        string
	PhotoURL    *string
	Age         *int
	Weight      *float64
	Sex         *domain.AnimalSex
	Temperament *string
	Story       *string
	IsAdopted   *bool
}

// AnimalUpdateInput carries partial updates; nil fields are unchanged.
type AnimalUpdateInput struct {
	Name        *string
	PhotoURL    *string
	Age         *int
	Weight      *float64
	Sex         *domain.AnimalSex
	Temperament *string
	Story       *string
	IsAdopted   *bool
}

// AnimalService gates animal access by policy and delegates to the
// resource store.
type AnimalService struct {
	animals    repository.AnimalRepository
	listings   *cache.ListingCache
	dispatcher events.Dispatcher
}

// NewAnimalService builds the service.
func NewAnimalService(animals repository.AnimalRepository, listings *cache.ListingCache, dispatcher events.Dispatcher) *AnimalService {
	return &AnimalService{animals: animals, listings: listings, dispatcher: dispatcher}
}

// List returns animals visible to the caller. Callers without
// view-all privilege only see animals not yet adopted; the read is
// narrowed, never refused.
func (s *AnimalService) List(ctx context.Context, status domain.AuthStatus) ([]domain.Animal, error) {
	if auth.CanViewAllAnimals(status.Role) {
		animals, err := s.animals.List(ctx, repository.AnimalFilter{})
		if err != nil {
			return nil, util.NewInternalError(err)
		}
		return animals, nil
	}

	var cached []domain.Animal
	if s.listings.Get(ctx, cache.KeyPublicAnimals, &cached) {
		return cached, nil
	}

	animals, err := s.animals.List(ctx, repository.AnimalFilter{AvailableOnly: true})
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	s.listings.Set(ctx, cache.KeyPublicAnimals, animals)
	return animals, nil
}

// Get returns a single animal. Reads are public.
func (s *AnimalService) Get(ctx context.Context, id int64) (*domain.Animal, error) {
	animal, err := s.animals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("animal")
		}
		return nil, util.NewInternalError(err)
	}
	return animal, nil
}

// Create adds an animal record for any authenticated caller.
func (s *AnimalService) Create(ctx context.Context, status domain.AuthStatus, input AnimalCreateInput) (*domain.Animal, error) {
	if !auth.CanMutateAnimals(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	animal := &domain.Animal{
		Name:        input.Name,
		PhotoURL:    input.PhotoURL,
		Age:         input.Age,
		Weight:      input.Weight,
		Sex:         input.Sex,
		Temperament: input.Temperament,
		Story:       input.Story,
	}
	if input.IsAdopted != nil {
		animal.IsAdopted = *input.IsAdopted
	}

	if err := s.animals.Create(ctx, animal); err != nil {
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventAnimalChanged, events.MutationCreated, animal.ID))
	return animal, nil
}

// Update applies a partial update after an existence check.
func (s *AnimalService) Update(ctx context.Context, status domain.AuthStatus, id int64, input AnimalUpdateInput) (*domain.Animal, error) {
	if !auth.CanMutateAnimals(status.Role) {
		return nil, util.NewUnauthorized("authentication required")
	}

	animal, err := s.animals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("animal")
		}
		return nil, util.NewInternalError(err)
	}

	if input.Name != nil {
		animal.Name = *input.Name
	}
	if input.PhotoURL != nil {
		animal.PhotoURL = input.PhotoURL
	}
	if input.Age != nil {
		animal.Age = input.Age
	}
	if input.Weight != nil {
		animal.Weight = input.Weight
	}
	if input.Sex != nil {
		animal.Sex = input.Sex
	}
	if input.Temperament != nil {
		animal.Temperament = input.Temperament
	}
	if input.Story != nil {
		animal.Story = input.Story
	}
	if input.IsAdopted != nil {
		animal.IsAdopted = *input.IsAdopted
	}

	if err := s.animals.Update(ctx, animal); err != nil {
		return nil, util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventAnimalChanged, events.MutationUpdated, animal.ID))
	return animal, nil
}

// Delete removes an animal after an existence check.
func (s *AnimalService) Delete(ctx context.Context, status domain.AuthStatus, id int64) error {
	if !auth.CanMutateAnimals(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	if _, err := s.animals.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("animal")
		}
		return util.NewInternalError(err)
	}

	if err := s.animals.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("animal")
		}
		return util.NewInternalError(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventAnimalChanged, events.MutationDeleted, id))
	return nil
}
