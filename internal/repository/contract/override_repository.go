package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OverrideRepository interface {
	// FindByUser returns all override rows for the user with feature keys
	// resolved. Rows referencing a deleted feature come back with an
	// empty key.
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.FeatureOverride, error)
	FindOne(ctx context.Context, userId, featureId uuid.UUID) (*entity.FeatureOverride, error)
	Upsert(ctx context.Context, override *entity.FeatureOverride) error
	Delete(ctx context.Context, userId, featureId uuid.UUID) error
}

type OverrideLogRepository interface {
	Append(ctx context.Context, log *entity.FeatureOverrideLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureOverrideLog, error)
}
