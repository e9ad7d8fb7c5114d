package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Payment / Billing DTOs ---

type CreateCheckoutRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

type CheckoutSessionResponse struct {
	SessionId   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// --- Referral DTOs ---

type ReferralSummaryResponse struct {
	ReferralCode string  `json:"referral_code"`
	ReferralLink string  `json:"referral_link"`
	TotalInvited int     `json:"total_invited"`
	TotalEarned  float64 `json:"total_earned"`
	Currency     string  `json:"currency"`
}

type CommissionResponse struct {
	Id        uuid.UUID `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
