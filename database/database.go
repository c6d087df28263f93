package database

import (
	"fmt"
	"log"
	"os"

	"abstract-portal/internal/domain/abstracts"
	"abstract-portal/internal/domain/admins"
	"abstract-portal/internal/domain/reviewers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid() on abstract primary keys
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&admins.Admin{},
		&reviewers.Reviewer{},
		&abstracts.Abstract{},
		&abstracts.Author{},
		&abstracts.Review{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
