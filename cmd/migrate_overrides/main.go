// One-time backfill: moves per-user override JSON blobs into the
// feature_overrides row table. Safe to re-run; users with an empty blob
// are skipped and rows are upserted by (user_id, feature_id).
package main

import (
	"context"
	"log"
	"os"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/unitofwork"
	"photofolio-be/pkg/database"
	"photofolio-be/pkg/entitlement"

	"github.com/fatih/color"
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

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to load feature catalog:", err)
	}
	featureByKey := make(map[string]*entity.Feature, len(features))
	for _, f := range features {
		featureByKey[f.Key] = f
	}

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to load users:", err)
	}

	migrated, skippedUsers, unknownKeys := 0, 0, 0
	for _, u := range users {
		if len(u.FeatureOverrides) == 0 {
			continue
		}

		overrides := entitlement.ParseLegacyOverrides(u.FeatureOverrides)
		if overrides == nil {
			color.Red("User %s: blob unreadable, left untouched", u.Id)
			skippedUsers++
			continue
		}

		ok := true
		for key, ov := range overrides {
			feature, found := featureByKey[key]
			if !found {
				color.Yellow("User %s: unknown feature key '%s', skipped", u.Id, key)
				unknownKeys++
				continue
			}

			row := &entity.FeatureOverride{
				UserId:     u.Id,
				FeatureId:  feature.Id,
				FeatureKey: feature.Key,
				Enabled:    ov.Enabled,
				Limit:      ov.Limit,
			}
			if err := uow.OverrideRepository().Upsert(ctx, row); err != nil {
				color.Red("User %s: failed to write override for '%s': %v", u.Id, key, err)
				ok = false
			}
		}

		if !ok {
			skippedUsers++
			continue
		}

		// Blob is cleared only after every key landed as a row, so a
		// failed run keeps the legacy source readable.
		if err := uow.UserRepository().ClearLegacyOverrides(ctx, u.Id); err != nil {
			color.Red("User %s: failed to clear blob: %v", u.Id, err)
			skippedUsers++
			continue
		}
		migrated++
	}

	color.Green("Done. migrated=%d skipped=%d unknown_keys=%d", migrated, skippedUsers, unknownKeys)
}
