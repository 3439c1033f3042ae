package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
	"github.com/Angelina20062025/WebMusicShop/internal/storage"
)

type ProductHandler struct {
	productService *service.ProductService
	images         *storage.ImageStore
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(productService *service.ProductService, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{productService: productService, images: images}
}

// ListProducts handles GET /api/products with sort and limit parameters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	sort := c.QueryParam("sort")
	limit := queryInt(c, "limit", 50)

	products, err := h.productService.ListProducts(c.Request().Context(), sort, limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}
	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// SaveProduct creates or updates a product from a multipart form
// POST /api/products with action=create or action=update.
func (h *ProductHandler) SaveProduct(c echo.Context) error {
	action := c.QueryParam("action")
	if action != "create" && action != "update" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown action"})
	}

	product := entity.Product{
		Title:       c.FormValue("title"),
		ArtistID:    formInt(c, "artist_id", 0),
		CategoryID:  formInt(c, "category_id", 0),
		Year:        formInt(c, "year", time.Now().Year()),
		Price:       formFloat(c, "price", 0),
		Description: c.FormValue("description"),
		Stock:       formInt(c, "stock", 10),
		Format:      entity.Format(c.FormValue("format")),
	}
	if product.Format == "" {
		product.Format = entity.FormatVinyl
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save("products", file)
		if err != nil {
			return errorJSON(c, err)
		}
		product.ImagePath = path
	}

	ctx := c.Request().Context()
	if action == "create" {
		if product.ImagePath == "" {
			product.ImagePath = "images/products/default.jpg"
		}
		id, err := h.productService.CreateProduct(ctx, &product)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":     "success",
			"message":    "Product created",
			"id":         id,
			"image_path": product.ImagePath,
		})
	}

	product.ID = queryInt(c, "id", 0)
	if err := h.productService.UpdateProduct(ctx, &product); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Product updated",
	})
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}
	if err := h.productService.DeleteProduct(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "Product deleted"})
}
