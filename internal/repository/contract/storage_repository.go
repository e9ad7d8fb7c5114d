package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StorageAccountRepository interface {
	Upsert(ctx context.Context, account *entity.StorageAccount) error
	FindByUserProvider(ctx context.Context, userId uuid.UUID, provider entity.StorageProvider) (*entity.StorageAccount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StorageAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GalleryRepository interface {
	Create(ctx context.Context, gallery *entity.Gallery) error
	Update(ctx context.Context, gallery *entity.Gallery) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Gallery, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Gallery, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
