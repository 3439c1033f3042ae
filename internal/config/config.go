package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the service.
type Config struct {
	ListenAddr string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr    string
	KafkaBrokers string

	JWTSecret string
	// AdminAuth gates the admin route group behind JWT. Off by default.
	AdminAuth bool
	// VerifyOrderTotal makes checkout recompute the order total from its
	// line items and reject mismatches.
	VerifyOrderTotal bool

	ImageDir string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBHost:           getEnv("DB_HOST", "127.0.0.1"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "root"),
		DBPass:           getEnv("DB_PASS", ""),
		DBName:           getEnv("DB_NAME", "music_shop"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		AdminAuth:        os.Getenv("ADMIN_AUTH") == "true",
		VerifyOrderTotal: os.Getenv("VERIFY_ORDER_TOTAL") == "true",
		ImageDir:         getEnv("IMAGE_DIR", "images"),
	}
}

// DSN builds the MySQL connection string. parseTime is required because
// entities hold time.Time columns.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
