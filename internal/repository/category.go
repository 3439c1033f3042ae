package repository

import (
	"context"
	"database/sql"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, func(rows *sql.Rows) (entity.Category, error) {
		var c entity.Category
		err := rows.Scan(&c.ID, &c.Name)
		return c, err
	})
}
