package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)
	// ClearLegacyOverrides nulls the legacy override blob after migration.
	ClearLegacyOverrides(ctx context.Context, id uuid.UUID) error
	// SaveUserProvider upserts the OAuth identity row for (user, provider).
	SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error
}

type UserTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error
	FindRefreshToken(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
}
