package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db}
}

const articleColumns = `id, title, slug, excerpt, content, image_path, author, category, is_featured, views, created_at, updated_at`

func scanArticle(row interface {
	Scan(dest ...interface{}) error
}) (entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.ImagePath, &a.Author, &a.Category, &a.IsFeatured, &a.Views, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ListArticles returns one page of articles, newest first, optionally
// filtered by category label.
func (r *ArticleRepository) ListArticles(ctx context.Context, page, limit int, category string) ([]entity.Article, int, error) {
	countQuery := `SELECT COUNT(*) FROM articles`
	listQuery := `SELECT ` + articleColumns + ` FROM articles`

	var countArgs, listArgs []interface{}
	if category != "" && category != "all" {
		countQuery += ` WHERE category = ?`
		listQuery += ` WHERE category = ?`
		countArgs = append(countArgs, category)
		listArgs = append(listArgs, category)
	}
	listQuery += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	listArgs = append(listArgs, limit, pageOffset(page, limit))

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	articles, err := collectRows(rows, func(rows *sql.Rows) (entity.Article, error) {
		return scanArticle(rows)
	})
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *ArticleRepository) GetArticleByID(ctx context.Context, id int) (*entity.Article, error) {
	a, err := scanArticle(r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArticleBySlug fetches one article and bumps its view counter. The
// increment lands even if the client disconnects before reading the body.
func (r *ArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if _, err := r.db.ExecContext(ctx, `UPDATE articles SET views = views + 1 WHERE slug = ?`, slug); err != nil {
		return nil, err
	}
	a, err := scanArticle(r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SlugExists reports whether another article already owns the slug.
// excludeID lets an update keep its own slug.
func (r *ArticleRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM articles WHERE slug = ? AND id != ?`, slug, excludeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ArticleRepository) CreateArticle(ctx context.Context, article *entity.Article) (int, error) {
	query := `INSERT INTO articles (title, slug, excerpt, content, image_path, author, category, is_featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, article.Title, article.Slug, article.Excerpt, article.Content, article.ImagePath, article.Author, article.Category, article.IsFeatured)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	article.ID = int(id)
	return int(id), nil
}

// UpdateArticle rewrites the article row. An empty ImagePath keeps the
// stored image untouched.
func (r *ArticleRepository) UpdateArticle(ctx context.Context, article *entity.Article) error {
	query := `UPDATE articles
		SET title = ?, slug = ?, excerpt = ?, content = ?,
		    image_path = COALESCE(NULLIF(?, ''), image_path),
		    author = ?, category = ?, is_featured = ?, updated_at = NOW()
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, article.Title, article.Slug, article.Excerpt, article.Content, article.ImagePath, article.Author, article.Category, article.IsFeatured, article.ID)
	return err
}

func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
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
