package entity

import "time"

type Article struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	ImagePath  string    `json:"image_path"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	IsFeatured bool      `json:"is_featured"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
