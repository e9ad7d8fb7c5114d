package main

import (
	"log"
	"os"

	"photofolio-be/internal/model"
	"photofolio-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

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

	color.Cyan("Seeding Feature Catalog...")
	features := seedFeatures(db)

	color.Cyan("Seeding Plans...")
	seedPlans(db, features)

	color.Green("Seeding completed!")
}

func seedFeatures(db *gorm.DB) map[string]model.Feature {
	features := []model.Feature{
		{Key: "clientGalleries", Name: "Client Galleries", Description: "Share password-protected photo galleries with clients", Category: "gallery", IsActive: true, SortOrder: 1},
		{Key: "maxGalleries", Name: "Gallery Limit", Description: "Maximum number of active client galleries", Category: "gallery", IsActive: true, SortOrder: 2},
		{Key: "maxScenaProjects", Name: "Scena Project Limit", Description: "Maximum number of shoot-planning boards", Category: "scena", IsActive: true, SortOrder: 3},
		{Key: "calendarSync", Name: "Calendar Sync", Description: "Push confirmed bookings to Google Calendar", Category: "booking", IsActive: true, SortOrder: 4},
		{Key: "externalStorage", Name: "External Storage", Description: "Connect Google Drive, Dropbox or OneDrive accounts", Category: "storage", IsActive: true, SortOrder: 5},
		{Key: "referralProgram", Name: "Referral Program", Description: "Earn commission for referred subscriptions", Category: "billing", DefaultEnabled: true, IsActive: true, SortOrder: 6},
	}

	byKey := make(map[string]model.Feature, len(features))
	for _, f := range features {
		var existing model.Feature
		if err := db.Where("key = ?", f.Key).First(&existing).Error; err == nil {
			color.Yellow("Feature '%s' already exists, skipping...", f.Key)
			byKey[f.Key] = existing
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			color.Red("Error creating feature '%s': %v", f.Key, err)
			continue
		}
		color.Green("Created feature: %s (%s)", f.Name, f.Key)
		byKey[f.Key] = f
	}
	return byKey
}

func seedPlans(db *gorm.DB, features map[string]model.Feature) {
	type grantSpec struct {
		key     string
		enabled bool
		limit   *int
	}

	plans := []struct {
		plan   model.Plan
		grants []grantSpec
	}{
		{
			plan: model.Plan{
				Name:          "Free",
				Slug:          "free",
				Tagline:       "Get started with the basics",
				Price:         0,
				BillingPeriod: "monthly",
				IsActive:      true,
				SortOrder:     1,
			},
			grants: []grantSpec{
				{key: "clientGalleries", enabled: true},
				{key: "maxGalleries", enabled: true, limit: intPtr(3)},
				{key: "maxScenaProjects", enabled: true, limit: intPtr(1)},
				{key: "calendarSync", enabled: false},
				{key: "externalStorage", enabled: false},
			},
		},
		{
			plan: model.Plan{
				Name:          "Pro",
				Slug:          "pro",
				Tagline:       "Everything a working photographer needs",
				Price:         19,
				BillingPeriod: "monthly",
				StripePriceId: os.Getenv("STRIPE_PRO_PRICE_ID"),
				IsMostPopular: true,
				IsActive:      true,
				SortOrder:     2,
			},
			grants: []grantSpec{
				{key: "clientGalleries", enabled: true},
				{key: "maxGalleries", enabled: true, limit: intPtr(-1)},
				{key: "maxScenaProjects", enabled: true, limit: intPtr(-1)},
				{key: "calendarSync", enabled: true},
				{key: "externalStorage", enabled: true},
			},
		},
	}

	for _, p := range plans {
		var existing model.Plan
		if err := db.Where("slug = ?", p.plan.Slug).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.plan.Slug)
			continue
		}

		if err := db.Create(&p.plan).Error; err != nil {
			color.Red("Error creating plan '%s': %v", p.plan.Slug, err)
			continue
		}

		for _, g := range p.grants {
			feature, ok := features[g.key]
			if !ok {
				color.Red("Unknown feature key '%s' for plan '%s'", g.key, p.plan.Slug)
				continue
			}
			grant := model.PlanFeature{
				PlanId:    p.plan.Id,
				FeatureId: feature.Id,
				Enabled:   g.enabled,
				Limit:     g.limit,
			}
			if err := db.Create(&grant).Error; err != nil {
				color.Red("Error granting '%s' to plan '%s': %v", g.key, p.plan.Slug, err)
			}
		}

		color.Green("Created plan: %s (%s)", p.plan.Name, p.plan.Slug)
	}
}
