package db

import (
	"fmt"
	"log"
	"os"

	"library_management_api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Book{}, &models.Member{}, &models.Transaction{}, &models.Fine{}); err != nil {
		return err
	}

	// Eligibility checks count open loans per member constantly.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_member
	  ON %s (member_id, due_date)
	  WHERE returned_at IS NULL;
	`, models.TransactionTable, models.TransactionTable)).Error; err != nil {
		return err
	}

	// Unpaid-fine lookups gate every borrow.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_unpaid_by_member
	  ON %s (member_id)
	  WHERE paid_at IS NULL;
	`, models.FineTable, models.FineTable)).Error; err != nil {
		return err
	}

	return nil
}
