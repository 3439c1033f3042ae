package repository

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a row referenced by identifier does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientStock is returned by the checkout transaction when a
// product's remaining stock cannot cover the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// collectRows drains rows through scan and returns the collected slice.
// Every list query goes through here so the rows.Close/rows.Err discipline
// lives in one place.
func collectRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// pageOffset translates a 1-based page and limit into a SQL offset.
func pageOffset(page, limit int) int {
	return (page - 1) * limit
}
