package model

import (
	"time"

	"github.com/google/uuid"
)

// ReferralCommission is written when a referred user completes a plan
// purchase. Amount is the referrer's cut in the payment currency.
type ReferralCommission struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferrerId uuid.UUID `gorm:"type:uuid;not null;index"`
	ReferredId uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId     uuid.UUID `gorm:"type:uuid;not null"`
	Amount     float64   `gorm:"type:decimal(10,2);not null"`
	Currency   string    `gorm:"type:varchar(10);not null;default:'usd'"`
	Status     string    `gorm:"type:varchar(50);not null;default:'pending'"` // pending, paid
	StripeEventId string `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ReferralCommission) TableName() string {
	return "referral_commissions"
}
