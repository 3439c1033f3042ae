package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

// productOrderBy maps a caller-selected sort key onto an ORDER BY clause.
// The set is closed; anything unrecognized falls back to the default order.
func productOrderBy(sort string) string {
	switch sort {
	case "newest":
		return "p.created_at DESC"
	case "price_asc":
		return "p.price ASC"
	case "price_desc":
		return "p.price DESC"
	default:
		return "p.title ASC"
	}
}

const productColumns = `p.id, p.title, p.artist_id, p.category_id, p.year, p.price, p.description, p.image_path, p.stock, p.format, p.created_at, p.updated_at,
	       COALESCE(a.name, '') AS artist_name, COALESCE(c.name, '') AS category_name`

func scanProduct(row interface {
	Scan(dest ...interface{}) error
}) (entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Title, &p.ArtistID, &p.CategoryID, &p.Year, &p.Price, &p.Description, &p.ImagePath, &p.Stock, &p.Format, &p.CreatedAt, &p.UpdatedAt, &p.ArtistName, &p.CategoryName)
	return p, err
}

func (r *ProductRepository) ListProducts(ctx context.Context, sort string, limit int) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN artists a ON p.artist_id = a.id
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY ` + productOrderBy(sort) + `
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, func(rows *sql.Rows) (entity.Product, error) {
		return scanProduct(rows)
	})
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN artists a ON p.artist_id = a.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = ?`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) (int, error) {
	query := `INSERT INTO products (title, artist_id, category_id, year, price, description, image_path, stock, format) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Title, product.ArtistID, product.CategoryID, product.Year, product.Price, product.Description, product.ImagePath, product.Stock, product.Format)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	product.ID = int(id)
	return int(id), nil
}

// UpdateProduct rewrites the product row. An empty ImagePath keeps the
// stored image untouched.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	query := `UPDATE products
		SET title = ?, artist_id = ?, category_id = ?, year = ?, price = ?, description = ?,
		    image_path = COALESCE(NULLIF(?, ''), image_path), stock = ?, format = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, product.Title, product.ArtistID, product.CategoryID, product.Year, product.Price, product.Description, product.ImagePath, product.Stock, product.Format, product.ID)
	return err
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
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
