package config

import (
	"log"
	"os"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens — read from env or fallback
func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))
}

// TokenTTL is the access token time-to-live
func TokenTTL() time.Duration {
	raw := getEnv("JWT_ACCESS_TOKEN_EXPIRATION", "24h")
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid JWT_ACCESS_TOKEN_EXPIRATION %q, using 24h", raw)
		return 24 * time.Hour
	}
	return ttl
}

func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_ordering.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
