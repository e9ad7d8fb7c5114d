package dto

import "github.com/google/uuid"

// --- Plan DTOs ---

type PlanResponse struct {
	Id            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Description   string                 `json:"description"`
	Tagline       string                 `json:"tagline,omitempty"`
	Price         float64                `json:"price"`
	BillingPeriod string                 `json:"billing_period"`
	IsMostPopular bool                   `json:"is_most_popular"`
	IsActive      bool                   `json:"is_active"`
	SortOrder     int                    `json:"sort_order"`
	Grants        []*PlanGrantResponse   `json:"grants,omitempty"`
}

type PlanGrantResponse struct {
	FeatureId  uuid.UUID `json:"feature_id"`
	FeatureKey string    `json:"feature_key"`
	Enabled    bool      `json:"enabled"`
	Limit      *int      `json:"limit,omitempty"`
}

type CreatePlanRequest struct {
	Name          string  `json:"name" validate:"required"`
	Slug          string  `json:"slug" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Tagline       string  `json:"tagline,omitempty"`
	Price         float64 `json:"price"`
	BillingPeriod string  `json:"billing_period" validate:"required,oneof=monthly yearly"`
	StripePriceId string  `json:"stripe_price_id,omitempty"`
	IsMostPopular bool    `json:"is_most_popular"`
	IsActive      bool    `json:"is_active"`
	SortOrder     int     `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Tagline       *string  `json:"tagline,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StripePriceId *string  `json:"stripe_price_id,omitempty"`
	IsMostPopular *bool    `json:"is_most_popular,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	SortOrder     *int     `json:"sort_order,omitempty"`
}

// SetGrantRequest assigns or updates a feature grant on a plan.
type SetGrantRequest struct {
	FeatureId uuid.UUID `json:"feature_id" validate:"required"`
	Enabled   bool      `json:"enabled"`
	Limit     *int      `json:"limit,omitempty"`
}
