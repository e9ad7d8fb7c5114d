// Package override manages per-user feature exceptions. Every write goes
// through here so it lands in the audit log.
package override

import (
	"context"
	"encoding/json"
	"fmt"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Admin identifies who performed the write, for the audit trail.
type Admin struct {
	Id    uuid.UUID
	Email string
	Role  string
}

func (m *Manager) GetForUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]*entity.FeatureOverride, error) {
	return uow.OverrideRepository().FindByUser(ctx, userId)
}

func (m *Manager) GetLog(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]*entity.FeatureOverrideLog, error) {
	return uow.OverrideLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

// Set writes an override row for one user and feature and appends an
// audit record carrying the previous and new values.
func (m *Manager) Set(ctx context.Context, uow unitofwork.UnitOfWork, admin Admin, userId uuid.UUID, req dto.SetOverrideRequest) (*entity.FeatureOverride, error) {
	if req.Enabled == nil && req.Limit == nil {
		return nil, fmt.Errorf("override must set enabled, limit or both")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.FeatureId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("feature not found")
	}

	previous, err := uow.OverrideRepository().FindOne(ctx, userId, feature.Id)
	if err != nil {
		return nil, err
	}

	override := &entity.FeatureOverride{
		Id:         uuid.New(),
		UserId:     userId,
		FeatureId:  feature.Id,
		FeatureKey: feature.Key,
		Enabled:    req.Enabled,
		Limit:      req.Limit,
	}
	if previous != nil {
		override.Id = previous.Id
	}

	if err := uow.OverrideRepository().Upsert(ctx, override); err != nil {
		return nil, err
	}

	if err := m.appendLog(ctx, uow, admin, userId, feature, "set", previous, override); err != nil {
		return nil, err
	}

	return override, nil
}

// Clear removes the override so the user returns to the plain plan grant.
func (m *Manager) Clear(ctx context.Context, uow unitofwork.UnitOfWork, admin Admin, userId, featureId uuid.UUID) error {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId})
	if err != nil {
		return err
	}
	if feature == nil {
		return fmt.Errorf("feature not found")
	}

	previous, err := uow.OverrideRepository().FindOne(ctx, userId, featureId)
	if err != nil {
		return err
	}
	if previous == nil {
		return nil
	}

	if err := uow.OverrideRepository().Delete(ctx, userId, featureId); err != nil {
		return err
	}

	return m.appendLog(ctx, uow, admin, userId, feature, "clear", previous, nil)
}

func (m *Manager) appendLog(ctx context.Context, uow unitofwork.UnitOfWork, admin Admin, userId uuid.UUID, feature *entity.Feature, action string, oldOverride, newOverride *entity.FeatureOverride) error {
	log := &entity.FeatureOverrideLog{
		Id:         uuid.New(),
		UserId:     userId,
		FeatureId:  feature.Id,
		FeatureKey: feature.Key,
		AdminId:    admin.Id,
		AdminEmail: admin.Email,
		AdminRole:  admin.Role,
		Action:     action,
		OldValue:   overrideValueJSON(oldOverride),
		NewValue:   overrideValueJSON(newOverride),
	}

	return uow.OverrideLogRepository().Append(ctx, log)
}

func overrideValueJSON(o *entity.FeatureOverride) *string {
	if o == nil {
		return nil
	}
	raw, err := json.Marshal(map[string]interface{}{
		"enabled": o.Enabled,
		"limit":   o.Limit,
	})
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}
