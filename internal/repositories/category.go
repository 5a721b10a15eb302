package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// CategoryRepository handles persistence for event categories.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &category.ID, query, category.Name, category.Description); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.CategoryDB, error) {
	const query = `SELECT id, name, description FROM categories WHERE id = $1`

	var category models.CategoryDB
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	categories := []models.CategoryDB{}
	err := r.db.SelectContext(ctx, &categories, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error) {
	const query = `UPDATE categories SET name = $2, description = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Description)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM categories`)
	return n, err
}
