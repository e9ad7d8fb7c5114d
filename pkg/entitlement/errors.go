package entitlement

import "errors"

var (
	// ErrPlanNotFound means even the fallback free plan is missing from
	// the catalog. This is a configuration error and surfaces as a 5xx.
	ErrPlanNotFound = errors.New("entitlement: fallback free plan not found")

	// ErrUserNotFound means the caller asked about a user id that does
	// not exist.
	ErrUserNotFound = errors.New("entitlement: user not found")
)
