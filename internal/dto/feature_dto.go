// DTOs for the feature catalog and resolved entitlements
package dto

import (
	"github.com/google/uuid"

	"photofolio-be/pkg/entitlement"
)

// --- Feature Catalog DTOs ---

type CreateFeatureRequest struct {
	Key            string `json:"key" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"` // gallery, scena, booking, billing
	DefaultEnabled bool   `json:"default_enabled"`
	IsActive       bool   `json:"is_active"`
	SortOrder      int    `json:"sort_order"`
}

type UpdateFeatureRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Category       *string `json:"category,omitempty"`
	DefaultEnabled *bool   `json:"default_enabled,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	SortOrder      *int    `json:"sort_order,omitempty"`
}

type FeatureResponse struct {
	Id             uuid.UUID `json:"id"`
	Key            string    `json:"key"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	DefaultEnabled bool      `json:"default_enabled"`
	IsActive       bool      `json:"is_active"`
	SortOrder      int       `json:"sort_order"`
}

// --- Resolved Entitlements ---

// EntitlementsResponse is the resolved feature set for a user. Features
// serializes as {key: bool | number} via entitlement.FeatureSet.
type EntitlementsResponse struct {
	UserId   uuid.UUID              `json:"user_id"`
	PlanSlug string                 `json:"plan_slug"`
	Features entitlement.FeatureSet `json:"features"`
}

type FeatureCheckResponse struct {
	Key      string `json:"key"`
	Enabled  bool   `json:"enabled"`
	Limit    *int   `json:"limit,omitempty"`
	HasLimit bool   `json:"has_limit"`
}
