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

type OverrideRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OverrideMapper
}

func NewOverrideRepository(db *gorm.DB) contract.OverrideRepository {
	return &OverrideRepositoryImpl{
		db:     db,
		mapper: mapper.NewOverrideMapper(),
	}
}

func (r *OverrideRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.FeatureOverride, error) {
	var models []*model.FeatureOverride
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Where("user_id = ?", userId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OverrideRepositoryImpl) FindOne(ctx context.Context, userId, featureId uuid.UUID) (*entity.FeatureOverride, error) {
	var m model.FeatureOverride
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Where("user_id = ? AND feature_id = ?", userId, featureId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OverrideRepositoryImpl) Upsert(ctx context.Context, override *entity.FeatureOverride) error {
	m := r.mapper.ToModel(override)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "feature_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "limit", "updated_at"}),
		}).
		Create(m).Error; err != nil {
		return err
	}
	*override = *r.mapper.ToEntity(m)
	return nil
}

func (r *OverrideRepositoryImpl) Delete(ctx context.Context, userId, featureId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND feature_id = ?", userId, featureId).
		Delete(&model.FeatureOverride{}).Error
}

type OverrideLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OverrideMapper
}

func NewOverrideLogRepository(db *gorm.DB) contract.OverrideLogRepository {
	return &OverrideLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewOverrideMapper(),
	}
}

func (r *OverrideLogRepositoryImpl) Append(ctx context.Context, log *entity.FeatureOverrideLog) error {
	m := r.mapper.LogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.LogToEntity(m)
	return nil
}

func (r *OverrideLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureOverrideLog, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	var models []*model.FeatureOverrideLog
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	logs := make([]*entity.FeatureOverrideLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, r.mapper.LogToEntity(m))
	}
	return logs, nil
}
