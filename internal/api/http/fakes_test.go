package http

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/repository"
)

// In-memory stand-ins for the Postgres repositories, enough to drive
// full request/response scenarios through the real handler stack.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	clone := *user
	clone.PasswordHash = stored.PasswordHash
	clone.UpdatedAt = time.Now()
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeAnimalRepo struct {
	animals map[int64]*domain.Animal
	nextID  int64
}

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{animals: make(map[int64]*domain.Animal), nextID: 1}
}

func (r *fakeAnimalRepo) Create(_ context.Context, animal *domain.Animal) error {
	animal.ID = r.nextID
	r.nextID++
	animal.CreatedAt = time.Now()
	animal.UpdatedAt = animal.CreatedAt
	clone := *animal
	r.animals[animal.ID] = &clone
	return nil
}

func (r *fakeAnimalRepo) Update(_ context.Context, animal *domain.Animal) error {
	if _, ok := r.animals[animal.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *animal
	clone.UpdatedAt = time.Now()
	r.animals[animal.ID] = &clone
	return nil
}

func (r *fakeAnimalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.animals[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.animals, id)
	return nil
}

func (r *fakeAnimalRepo) GetByID(_ context.Context, id int64) (*domain.Animal, error) {
	animal, ok := r.animals[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *animal
	return &clone, nil
}

func (r *fakeAnimalRepo) List(_ context.Context, filter repository.AnimalFilter) ([]domain.Animal, error) {
	out := make([]domain.Animal, 0, len(r.animals))
	for _, animal := range r.animals {
		if filter.AvailableOnly && animal.IsAdopted {
			continue
		}
		out = append(out, *animal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMenuRepo struct {
	items  map[int64]*domain.MenuItem
	nextID int64
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[int64]*domain.MenuItem), nextID: 1}
}

func (r *fakeMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return uniqueViolation("menu_items_name_key")
		}
	}
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeMenuRepo) Update(_ context.Context, item *domain.MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.items {
		if id != item.ID && existing.Name == item.Name {
			return uniqueViolation("menu_items_name_key")
		}
	}
	clone := *item
	clone.UpdatedAt = time.Now()
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) GetByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *item
	return &clone, nil
}

func (r *fakeMenuRepo) List(_ context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.AvailableOnly && !item.IsAvailable {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeEventRepo struct {
	events map[int64]*domain.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*domain.Event), nextID: 1}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	event.ID = r.nextID
	r.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *event
	clone.UpdatedAt = time.Now()
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *event
	return &clone, nil
}

func (r *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, event := range r.events {
		if filter.Since != nil && event.Date.Before(*filter.Since) {
			continue
		}
		out = append(out, *event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
