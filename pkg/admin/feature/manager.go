package feature

import (
	"context"
	"fmt"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles feature catalog operations
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// GetAll retrieves all features from the master catalog
func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Feature, error) {
	return uow.FeatureRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
}

// Create adds a new feature to the master catalog
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateFeatureRequest) (*entity.Feature, error) {
	existing, err := uow.FeatureRepository().FindByKey(ctx, req.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("feature with key '%s' already exists", req.Key)
	}

	feature := &entity.Feature{
		Id:             uuid.New(),
		Key:            req.Key,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		DefaultEnabled: req.DefaultEnabled,
		IsActive:       req.IsActive,
		SortOrder:      req.SortOrder,
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Update modifies a feature in the master catalog. The key is immutable:
// plan grants and overrides reference it through the feature id, but
// resolved entitlement maps are keyed by it.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateFeatureRequest) (*entity.Feature, error) {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("feature not found")
	}

	if req.Name != nil {
		feature.Name = *req.Name
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.Category != nil {
		feature.Category = *req.Category
	}
	if req.DefaultEnabled != nil {
		feature.DefaultEnabled = *req.DefaultEnabled
	}
	if req.IsActive != nil {
		feature.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		feature.SortOrder = *req.SortOrder
	}

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Delete removes a feature from the master catalog. Grants and overrides
// that referenced it become orphans and drop out of resolution.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feature == nil {
		return fmt.Errorf("feature not found")
	}

	return uow.FeatureRepository().Delete(ctx, id)
}
