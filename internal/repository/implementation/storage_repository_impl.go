package implementation

import (
	"context"
	"errors"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/mapper"
	"photofolio-be/internal/model"
	"photofolio-be/internal/repository/contract"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StorageAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StorageMapper
}

func NewStorageAccountRepository(db *gorm.DB) contract.StorageAccountRepository {
	return &StorageAccountRepositoryImpl{
		db:     db,
		mapper: mapper.NewStorageMapper(),
	}
}

func (r *StorageAccountRepositoryImpl) Upsert(ctx context.Context, account *entity.StorageAccount) error {
	m := r.mapper.AccountToModel(account)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"account_email", "access_token", "refresh_token", "token_expires_at", "updated_at"}),
		}).
		Create(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.AccountToEntity(m)
	return nil
}

func (r *StorageAccountRepositoryImpl) FindByUserProvider(ctx context.Context, userId uuid.UUID, provider entity.StorageProvider) (*entity.StorageAccount, error) {
	var m model.StorageAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userId, string(provider)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AccountToEntity(&m), nil
}

func (r *StorageAccountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StorageAccount, error) {
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	var models []*model.StorageAccount
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AccountsToEntities(models), nil
}

func (r *StorageAccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StorageAccount{}, id).Error
}

type GalleryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StorageMapper
}

func NewGalleryRepository(db *gorm.DB) contract.GalleryRepository {
	return &GalleryRepositoryImpl{
		db:     db,
		mapper: mapper.NewStorageMapper(),
	}
}

func (r *GalleryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GalleryRepositoryImpl) Create(ctx context.Context, gallery *entity.Gallery) error {
	m := r.mapper.GalleryToModel(gallery)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*gallery = *r.mapper.GalleryToEntity(m)
	return nil
}

func (r *GalleryRepositoryImpl) Update(ctx context.Context, gallery *entity.Gallery) error {
	m := r.mapper.GalleryToModel(gallery)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*gallery = *r.mapper.GalleryToEntity(m)
	return nil
}

func (r *GalleryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Gallery{}, id).Error
}

func (r *GalleryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Gallery, error) {
	var m model.Gallery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.GalleryToEntity(&m), nil
}

func (r *GalleryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Gallery, error) {
	var models []*model.Gallery
	query := r.applySpecifications(r.db.WithContext(ctx).Order("sort_order ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GalleriesToEntities(models), nil
}

func (r *GalleryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Gallery{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
