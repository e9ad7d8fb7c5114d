package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
)

type ReferralRepository interface {
	CreateCommission(ctx context.Context, commission *entity.ReferralCommission) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralCommission, error)
	// FindByStripeEvent is the idempotency check for webhook retries.
	FindByStripeEvent(ctx context.Context, eventId string) (*entity.ReferralCommission, error)
}
