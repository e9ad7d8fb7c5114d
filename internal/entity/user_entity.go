// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser       UserRole = "user"
	UserRoleStaff      UserRole = "staff"
	UserRoleSuperadmin UserRole = "superadmin"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	Status       UserStatus
	// PlanId nil means the user falls back to the free plan.
	PlanId *uuid.UUID
	// FeatureOverrides is the raw legacy JSON blob (may be nil or
	// malformed; the resolver parses it defensively).
	FeatureOverrides []byte
	StudioName       *string
	Bio              *string
	AvatarURL        *string
	ReferralCode     string
	ReferredBy       *uuid.UUID
	EmailVerified    bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}
