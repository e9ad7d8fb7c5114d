package entity

import (
	"time"

	"github.com/google/uuid"
)

type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"

	// FreePlanSlug is the fallback plan every user without an assigned
	// plan resolves to. Its absence from the catalog is a configuration
	// error, never silently defaulted.
	FreePlanSlug = "free"
)

type Plan struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Tagline       string
	Price         float64
	BillingPeriod BillingPeriod
	StripePriceId string
	IsMostPopular bool
	IsActive      bool
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Grants []*PlanFeature
}

// PlanFeature is a single grant owned by a plan: an on/off flag plus an
// optional numeric limit (-1 = unlimited, nil = no numeric limit defined).
type PlanFeature struct {
	PlanId     uuid.UUID
	FeatureId  uuid.UUID
	FeatureKey string
	Enabled    bool
	Limit      *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
