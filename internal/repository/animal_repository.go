package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// AnimalFilter narrows animal listings for restricted reads.
type AnimalFilter struct {
	// AvailableOnly limits results to animals not yet adopted.
	AvailableOnly bool
}

// AnimalRepository defines persistence access for animal records.
type AnimalRepository interface {
	Create(ctx context.Context, animal *domain.Animal) error
	Update(ctx context.Context, animal *domain.Animal) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Animal, error)
	List(ctx context.Context, filter AnimalFilter) ([]domain.Animal, error)
}

type animalRepository struct {
	pool *pgxpool.Pool
}

// NewAnimalRepository returns a Postgres-backed implementation.
func NewAnimalRepository(pool *pgxpool.Pool) AnimalRepository {
	return &animalRepository{pool: pool}
}

const animalColumns = `id, name, photo_url, age, weight, sex, temperament, story, is_adopted, created_at, updated_at`

func scanAnimal(row pgx.Row) (*domain.Animal, error) {
	var a domain.Animal
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.PhotoURL,
		&a.Age,
		&a.Weight,
		&a.Sex,
		&a.Temperament,
		&a.Story,
		&a.IsAdopted,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepository) Create(ctx context.Context, animal *domain.Animal) error {
	const query = `
        INSERT INTO animals (name, photo_url, age, weight, sex, temperament, story, is_adopted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		animal.Name,
		animal.PhotoURL,
		animal.Age,
		animal.Weight,
		animal.Sex,
		animal.Temperament,
		animal.Story,
		animal.IsAdopted,
	).Scan(&animal.ID, &animal.CreatedAt, &animal.UpdatedAt)
}

func (r *animalRepository) Update(ctx context.Context, animal *domain.Animal) error {
	const query = `
        UPDATE animals
        SET name=$1, photo_url=$2, age=$3, weight=$4, sex=$5, temperament=$6, story=$7, is_adopted=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		animal.Name,
		animal.PhotoURL,
		animal.Age,
		animal.Weight,
		animal.Sex,
		animal.Temperament,
		animal.Story,
		animal.IsAdopted,
		animal.ID,
	).Scan(&animal.UpdatedAt)
}

func (r *animalRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM animals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *animalRepository) GetByID(ctx context.Context, id int64) (*domain.Animal, error) {
	return scanAnimal(r.pool.QueryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id=$1`, id))
}

func (r *animalRepository) List(ctx context.Context, filter AnimalFilter) ([]domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	if filter.AvailableOnly {
		query += ` WHERE is_adopted = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []domain.Animal
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		animals = append(animals, *animal)
	}
	return animals, rows.Err()
}
