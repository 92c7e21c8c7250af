package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// MenuFilter narrows menu listings for restricted reads.
type MenuFilter struct {
	// AvailableOnly limits results to items currently on the menu.
	AvailableOnly bool
}

// MenuItemRepository defines persistence access for menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
}

type menuItemRepository struct {
	pool *pgxpool.Pool
}

// NewMenuItemRepository returns a Postgres-backed implementation.
func NewMenuItemRepository(pool *pgxpool.Pool) MenuItemRepository {
	return &menuItemRepository{pool: pool}
}

const menuItemColumns = `id, name, description, price, photo_url, popularity, is_available, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.PhotoURL,
		&item.Popularity,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (name, description, price, photo_url, popularity, is_available)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Price,
		item.PhotoURL,
		item.Popularity,
		item.IsAvailable,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        UPDATE menu_items
        SET name=$1, description=$2, price=$3, photo_url=$4, popularity=$5, is_available=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Price,
		item.PhotoURL,
		item.Popularity,
		item.IsAvailable,
		item.ID,
	).Scan(&item.UpdatedAt)
}

func (r *menuItemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return scanMenuItem(r.pool.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id=$1`, id))
}

func (r *menuItemRepository) List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	if filter.AvailableOnly {
		query += ` WHERE is_available = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
