package entity

import "time"

// Format is the physical media format of a product.
type Format string

const (
	FormatVinyl    Format = "vinyl"
	FormatCD       Format = "cd"
	FormatCassette Format = "cassette"
)

func (f Format) Valid() bool {
	switch f {
	case FormatVinyl, FormatCD, FormatCassette:
		return true
	}
	return false
}

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	ArtistID    int       `json:"artist_id"`
	CategoryID  int       `json:"category_id"`
	Year        int       `json:"year"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Stock       int       `json:"stock"`
	Format      Format    `json:"format"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined columns, populated on reads.
	ArtistName   string `json:"artist_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}
