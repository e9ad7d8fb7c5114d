package entity

import (
	"time"

	"github.com/google/uuid"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)

type ReferralCommission struct {
	Id            uuid.UUID
	ReferrerId    uuid.UUID
	ReferredId    uuid.UUID
	PlanId        uuid.UUID
	Amount        float64
	Currency      string
	Status        CommissionStatus
	StripeEventId string
	CreatedAt     time.Time
}
