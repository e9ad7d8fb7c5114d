package implementation

import (
	"context"
	"errors"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/mapper"
	"photofolio-be/internal/model"
	"photofolio-be/internal/repository/contract"
	"photofolio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReferralRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferralMapper
}

func NewReferralRepository(db *gorm.DB) contract.ReferralRepository {
	return &ReferralRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferralMapper(),
	}
}

func (r *ReferralRepositoryImpl) CreateCommission(ctx context.Context, commission *entity.ReferralCommission) error {
	m := r.mapper.ToModel(commission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*commission = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferralRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralCommission, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	var models []*model.ReferralCommission
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReferralRepositoryImpl) FindByStripeEvent(ctx context.Context, eventId string) (*entity.ReferralCommission, error) {
	var m model.ReferralCommission
	if err := r.db.WithContext(ctx).Where("stripe_event_id = ?", eventId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
