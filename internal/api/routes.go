package api

import (
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

// Handlers bundles everything RegisterRoutes wires onto the server.
type Handlers struct {
	Products *ProductHandler
	Articles *ArticleHandler
	Orders   *OrderHandler
	Reviews  *ReviewHandler
	Artists  *ArtistHandler
	Auth     *AuthHandler
}

// RegisterRoutes mounts all endpoints. When adminAuth is true the admin
// group requires a JWT carrying role=admin; otherwise the group is open,
// matching the storefront's original behavior.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, adminAuth bool) {
	api := e.Group("/api")

	// Public storefront.
	api.GET("/products", h.Products.ListProducts)
	api.GET("/products/:id", h.Products.GetProduct)
	api.GET("/articles", h.Articles.ListArticles)
	api.GET("/articles/:id", h.Articles.GetArticle)
	api.GET("/artists", h.Artists.ListArtists)
	api.GET("/categories", h.Artists.ListCategories)
	api.GET("/reviews", h.Reviews.GetReviews)
	api.POST("/reviews", h.Reviews.CreateReview)
	api.POST("/orders", h.Orders.CreateOrder)
	api.POST("/auth/login", h.Auth.Login)

	// Admin back office.
	admin := e.Group("/api")
	if adminAuth {
		admin.Use(echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(jwtSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(service.JwtCustomClaims)
			},
		}))
		admin.Use(requireAdmin)
	}
	admin.POST("/products", h.Products.SaveProduct)
	admin.DELETE("/products/:id", h.Products.DeleteProduct)
	admin.POST("/articles", h.Articles.SaveArticle)
	admin.DELETE("/articles/:id", h.Articles.DeleteArticle)
	admin.GET("/orders", h.Orders.ListOrders)
	admin.GET("/orders/:id", h.Orders.GetOrder)
	admin.PUT("/orders", h.Orders.UpdateStatus)
	admin.POST("/artists", h.Artists.CreateArtist)
	admin.DELETE("/reviews/:id", h.Reviews.DeleteReview)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "music-shop",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}

// requireAdmin rejects tokens without the admin role.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		claims, ok := token.Claims.(*service.JwtCustomClaims)
		if !ok || claims.Role != entity.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
		}
		return next(c)
	}
}
