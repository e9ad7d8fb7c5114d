package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string    `gorm:"type:text"`
	Tagline       string    `gorm:"type:text"` // Subtitle for pricing modal
	Price         float64   `gorm:"type:decimal(10,2);not null"`
	BillingPeriod string    `gorm:"type:varchar(20);not null;default:'monthly'"`
	StripePriceId string    `gorm:"type:varchar(255)"`
	// Display Settings
	IsMostPopular bool `gorm:"default:false"`
	IsActive      bool `gorm:"default:true"`
	SortOrder     int  `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relations
	Grants []*PlanFeature `gorm:"foreignKey:PlanId"`
}

func (Plan) TableName() string {
	return "plans"
}

// PlanFeature is a single grant owned by a plan. At most one row exists
// per (plan, feature) pair; Limit nil means no numeric limit is defined,
// -1 means unlimited.
type PlanFeature struct {
	PlanId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FeatureId uuid.UUID `gorm:"type:uuid;primaryKey"`
	Enabled   bool      `gorm:"default:false"`
	Limit     *int
	CreatedAt time.Time `gorm:"default:now()"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Feature *Feature `gorm:"foreignKey:FeatureId"`
}

func (PlanFeature) TableName() string {
	return "plan_features"
}
