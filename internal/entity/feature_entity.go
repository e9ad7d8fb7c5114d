// FILE: internal/entity/feature_entity.go
// Domain entities for the feature catalog and per-user overrides
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature represents a feature in the master catalog
type Feature struct {
	Id             uuid.UUID
	Key            string // Unique key: calendarSync, maxScenaProjects, etc.
	Name           string // Display name: "Calendar Sync"
	Description    string
	Category       string // gallery, scena, booking, billing
	DefaultEnabled bool   // Used when no plan grant or override exists
	IsActive       bool   // Global enable/disable
	SortOrder      int    // Display order
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FeatureOverride is a per-user exception above the plan grant. Nil fields
// inherit the plan's value.
type FeatureOverride struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	FeatureId  uuid.UUID
	FeatureKey string
	Enabled    *bool
	Limit      *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FeatureOverrideLog is one append-only audit record for an override write.
type FeatureOverrideLog struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	FeatureId  uuid.UUID
	FeatureKey string
	AdminId    uuid.UUID
	AdminEmail string
	AdminRole  string
	Action     string
	OldValue   *string
	NewValue   *string
	CreatedAt  time.Time
}
