package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Plan, error)

	// FindGrants returns the plan's feature grants with the feature key
	// resolved from the catalog. Grants referencing a deleted feature come
	// back with an empty key so the resolver can skip them.
	FindGrants(ctx context.Context, planId uuid.UUID) ([]*entity.PlanFeature, error)
	UpsertGrant(ctx context.Context, grant *entity.PlanFeature) error
	DeleteGrant(ctx context.Context, planId, featureId uuid.UUID) error
}
