package model

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PhotographerId uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName     string    `gorm:"type:varchar(255);not null"`
	ClientEmail    string    `gorm:"type:varchar(255);not null"`
	StartsAt       time.Time `gorm:"not null;index"`
	EndsAt         time.Time `gorm:"not null"`
	Location       string    `gorm:"type:text"`
	Notes          string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(50);not null;default:'pending'"` // pending, confirmed, canceled
	CalendarEventId *string  `gorm:"type:varchar(255)"` // set once synced to the external calendar
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
