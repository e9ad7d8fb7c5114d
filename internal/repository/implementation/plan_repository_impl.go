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

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlanMapper
}

func NewPlanRepository(db *gorm.DB) contract.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlanMapper(),
	}
}

func (r *PlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *entity.Plan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *entity.Plan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Plan{}, id).Error
}

func (r *PlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	var m model.Plan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var models []*model.Plan
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("Grants.Feature").Order("sort_order ASC"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PlanRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Plan, error) {
	var m model.Plan
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlanRepositoryImpl) FindGrants(ctx context.Context, planId uuid.UUID) ([]*entity.PlanFeature, error) {
	var models []*model.PlanFeature
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Where("plan_id = ?", planId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.GrantsToEntities(models), nil
}

func (r *PlanRepositoryImpl) UpsertGrant(ctx context.Context, grant *entity.PlanFeature) error {
	m := r.mapper.GrantToModel(grant)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "plan_id"}, {Name: "feature_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "limit", "updated_at"}),
		}).
		Create(m).Error
}

func (r *PlanRepositoryImpl) DeleteGrant(ctx context.Context, planId, featureId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("plan_id = ? AND feature_id = ?", planId, featureId).
		Delete(&model.PlanFeature{}).Error
}
