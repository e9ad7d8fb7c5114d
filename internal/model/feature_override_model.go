package model

import (
	"time"

	"github.com/google/uuid"
)

// FeatureOverride is a per-user exception layered above the plan grant.
// Enabled and Limit are nullable so an override can touch a single field
// and inherit the rest from the plan.
type FeatureOverride struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feature_overrides_user_feature"`
	FeatureId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feature_overrides_user_feature"`
	Enabled   *bool
	Limit     *int
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Feature *Feature `gorm:"foreignKey:FeatureId"`
}

func (FeatureOverride) TableName() string {
	return "feature_overrides"
}

// FeatureOverrideLog is the append-only audit trail for override writes.
// The resolution path never reads it.
type FeatureOverrideLog struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	FeatureId  uuid.UUID `gorm:"type:uuid;not null;index"`
	FeatureKey string    `gorm:"type:varchar(100);not null"`
	AdminId    uuid.UUID `gorm:"type:uuid;not null"`
	AdminEmail string    `gorm:"type:varchar(255);not null"`
	AdminRole  string    `gorm:"type:varchar(50);not null"`
	Action     string    `gorm:"type:varchar(50);not null"` // create, update, delete
	OldValue   *string   `gorm:"type:jsonb"`
	NewValue   *string   `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"default:now();not null;index"`
}

func (FeatureOverrideLog) TableName() string {
	return "feature_override_logs"
}
