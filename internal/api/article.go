package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
	"github.com/Angelina20062025/WebMusicShop/internal/storage"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	images         *storage.ImageStore
}

// NewArticleHandler creates a new instance of ArticleHandler.
func NewArticleHandler(articleService *service.ArticleService, images *storage.ImageStore) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, images: images}
}

// ListArticles handles GET /api/articles with page, limit, category and slug filters.
// A slug query returns a single article and bumps its view counter.
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	ctx := c.Request().Context()

	if slug := c.QueryParam("slug"); slug != "" {
		article, err := h.articleService.GetArticleBySlug(ctx, slug)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, article)
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	category := c.QueryParam("category")

	articles, pagination, err := h.articleService.ListArticles(ctx, page, limit, category)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"articles":   articles,
		"pagination": pagination,
	})
}

// GetArticle handles GET /api/articles/:id.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid article ID"})
	}
	article, err := h.articleService.GetArticle(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// SaveArticle creates or updates an article from a multipart form
// POST /api/articles with action=create or action=update.
func (h *ArticleHandler) SaveArticle(c echo.Context) error {
	action := c.QueryParam("action")
	if action != "create" && action != "update" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown action"})
	}

	featured := c.FormValue("is_featured")
	article := entity.Article{
		Title:      c.FormValue("title"),
		Slug:       c.FormValue("slug"),
		Excerpt:    c.FormValue("excerpt"),
		Content:    c.FormValue("content"),
		Author:     c.FormValue("author"),
		Category:   c.FormValue("category"),
		IsFeatured: featured == "1" || featured == "true" || featured == "on",
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save("articles", file)
		if err != nil {
			return errorJSON(c, err)
		}
		article.ImagePath = path
	}

	ctx := c.Request().Context()
	if action == "create" {
		if article.ImagePath == "" {
			article.ImagePath = "images/articles/default.jpg"
		}
		id, err := h.articleService.CreateArticle(ctx, &article)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "success",
			"message": "Article created",
			"id":      id,
		})
	}

	article.ID = queryInt(c, "id", 0)
	if err := h.articleService.UpdateArticle(ctx, &article); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Article updated",
	})
}

// DeleteArticle handles DELETE /api/articles/:id.
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid article ID"})
	}
	if err := h.articleService.DeleteArticle(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "Article deleted"})
}
