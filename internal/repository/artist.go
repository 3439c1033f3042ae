package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type ArtistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db}
}

// ListArtists returns all artists ordered by name, for the admin product
// form's artist picker.
func (r *ArtistRepository) ListArtists(ctx context.Context) ([]entity.Artist, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, country, bio FROM artists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, func(rows *sql.Rows) (entity.Artist, error) {
		var a entity.Artist
		err := rows.Scan(&a.ID, &a.Name, &a.Country, &a.Bio)
		return a, err
	})
}

// NameExists reports whether an artist with the given name already exists.
func (r *ArtistRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM artists WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ArtistRepository) CreateArtist(ctx context.Context, artist *entity.Artist) (*entity.Artist, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO artists (name, country, bio) VALUES (?, ?, ?)`, artist.Name, artist.Country, artist.Bio)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	artist.ID = int(id)
	return artist, nil
}
