package main

import (
	"log"
	"os"

	"photofolio-be/internal/model"
	"photofolio-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running migrations...")

	err = db.AutoMigrate(
		&model.User{},
		&model.UserRefreshToken{},
		&model.UserProvider{},
		&model.Feature{},
		&model.Plan{},
		&model.PlanFeature{},
		&model.FeatureOverride{},
		&model.FeatureOverrideLog{},
		&model.Gallery{},
		&model.ScenaProject{},
		&model.ScenaCard{},
		&model.Booking{},
		&model.StorageAccount{},
		&model.ReferralCommission{},
	)
	if err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migrations completed!")
}
