// Package migrations creates the music_shop schema on startup.
package migrations

import (
	"context"
	"database/sql"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS artists (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		country VARCHAR(100) NOT NULL DEFAULT '',
		bio TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		artist_id INT NOT NULL,
		category_id INT NOT NULL,
		year INT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		description TEXT NOT NULL,
		image_path VARCHAR(255) NOT NULL DEFAULT '',
		stock INT NOT NULL DEFAULT 0,
		format VARCHAR(20) NOT NULL DEFAULT 'vinyl',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (artist_id) REFERENCES artists(id),
		FOREIGN KEY (category_id) REFERENCES categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL UNIQUE,
		excerpt TEXT NOT NULL,
		content TEXT NOT NULL,
		image_path VARCHAR(255) NOT NULL DEFAULT '',
		author VARCHAR(100) NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		views INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(50) NOT NULL DEFAULT '',
		total_amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		product_id INT NOT NULL,
		quantity INT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		username VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		full_name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id INT AUTO_INCREMENT PRIMARY KEY,
		product_id INT NOT NULL,
		user_id INT NULL,
		user_name VARCHAR(100) NOT NULL,
		rating TINYINT NOT NULL,
		comment VARCHAR(1000) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
}

// Apply runs all schema statements in dependency order.
func Apply(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
