package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Angelina20062025/WebMusicShop/internal/api"
	"github.com/Angelina20062025/WebMusicShop/internal/config"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
	"github.com/Angelina20062025/WebMusicShop/internal/storage"
	"github.com/Angelina20062025/WebMusicShop/migrations"
)

func connectDB(dsn, dbname string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s: %v", i+1, dbname, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s after retries: %v", dbname, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DSN(), cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	orderEvents := config.NewKafkaWriter(cfg.KafkaBrokers, "order-topic")
	images := storage.NewImageStore(cfg.ImageDir)

	productRepo := repository.NewProductRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	handlers := api.Handlers{
		Products: api.NewProductHandler(service.NewProductService(productRepo, rdb), images),
		Articles: api.NewArticleHandler(service.NewArticleService(articleRepo), images),
		Orders:   api.NewOrderHandler(service.NewOrderService(orderRepo, orderEvents, rdb, cfg.VerifyOrderTotal)),
		Reviews:  api.NewReviewHandler(service.NewReviewService(reviewRepo)),
		Artists:  api.NewArtistHandler(service.NewArtistService(artistRepo, categoryRepo)),
		Auth:     api.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret)),
	}

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     40,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.Static("/images", cfg.ImageDir)

	api.RegisterRoutes(e, handlers, cfg.JWTSecret, cfg.AdminAuth)

	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
