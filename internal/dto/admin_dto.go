// DTOs for the admin surface: user administration and override management
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admin User DTOs ---

type AdminUserResponse struct {
	Id            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	PlanId        *uuid.UUID `json:"plan_id,omitempty"`
	PlanSlug      string     `json:"plan_slug,omitempty"`
	ReferralCode  string     `json:"referral_code,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
}

type AdminUpdateUserRequest struct {
	FullName *string    `json:"full_name,omitempty"`
	Role     *string    `json:"role,omitempty" validate:"omitempty,oneof=user staff superadmin"`
	Status   *string    `json:"status,omitempty" validate:"omitempty,oneof=pending active blocked"`
	PlanId   *uuid.UUID `json:"plan_id,omitempty"`
}

// --- Override DTOs ---

// SetOverrideRequest writes a per-user exception for one feature. Omitted
// fields inherit the plan's value for that field.
type SetOverrideRequest struct {
	FeatureId uuid.UUID `json:"feature_id" validate:"required"`
	Enabled   *bool     `json:"enabled,omitempty"`
	Limit     *int      `json:"limit,omitempty"`
}

type OverrideResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	FeatureId  uuid.UUID `json:"feature_id"`
	FeatureKey string    `json:"feature_key"`
	Enabled    *bool     `json:"enabled,omitempty"`
	Limit      *int      `json:"limit,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type OverrideLogResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	FeatureKey string    `json:"feature_key"`
	AdminEmail string    `json:"admin_email"`
	AdminRole  string    `json:"admin_role"`
	Action     string    `json:"action"`
	OldValue   *string   `json:"old_value,omitempty"`
	NewValue   *string   `json:"new_value,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- System Log DTOs ---

type SystemLogQuery struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
