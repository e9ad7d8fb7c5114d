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
)

type ScenaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScenaMapper
}

func NewScenaRepository(db *gorm.DB) contract.ScenaRepository {
	return &ScenaRepositoryImpl{
		db:     db,
		mapper: mapper.NewScenaMapper(),
	}
}

func (r *ScenaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScenaRepositoryImpl) CreateProject(ctx context.Context, project *entity.ScenaProject) error {
	m := r.mapper.ProjectToModel(project)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ProjectToEntity(m)
	return nil
}

func (r *ScenaRepositoryImpl) UpdateProject(ctx context.Context, project *entity.ScenaProject) error {
	m := r.mapper.ProjectToModel(project)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ProjectToEntity(m)
	return nil
}

func (r *ScenaRepositoryImpl) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ScenaProject{}, id).Error
}

func (r *ScenaRepositoryImpl) FindOneProject(ctx context.Context, specs ...specification.Specification) (*entity.ScenaProject, error) {
	var m model.ScenaProject
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Cards"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProjectToEntity(&m), nil
}

func (r *ScenaRepositoryImpl) FindProjects(ctx context.Context, specs ...specification.Specification) ([]*entity.ScenaProject, error) {
	var models []*model.ScenaProject
	query := r.applySpecifications(r.db.WithContext(ctx).Order("created_at DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProjectsToEntities(models), nil
}

func (r *ScenaRepositoryImpl) CountProjects(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ScenaProject{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ScenaRepositoryImpl) CreateCard(ctx context.Context, card *entity.ScenaCard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *ScenaRepositoryImpl) UpdateCard(ctx context.Context, card *entity.ScenaCard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *ScenaRepositoryImpl) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ScenaCard{}, id).Error
}

func (r *ScenaRepositoryImpl) FindOneCard(ctx context.Context, specs ...specification.Specification) (*entity.ScenaCard, error) {
	var m model.ScenaCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CardToEntity(&m), nil
}

func (r *ScenaRepositoryImpl) FindCards(ctx context.Context, projectId uuid.UUID) ([]*entity.ScenaCard, error) {
	var models []*model.ScenaCard
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectId).
		Order("sort_order ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.CardsToEntities(models), nil
}
