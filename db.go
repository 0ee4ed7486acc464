package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

func setupDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "campusfood"),
			envOr("DB_PORT", "5432"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	// TranslateError lets repositories match gorm.ErrDuplicatedKey instead
	// of driver-specific pg error codes.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		log.Println("warning: failed to ensure uuid-ossp extension:", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Favorite{},
		&entity.Profile{},
		&entity.Vendor{},
		&entity.MenuItem{},
		&entity.Admin{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.AuditLog{},
		&entity.Notification{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
