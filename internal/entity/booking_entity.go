package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

type Booking struct {
	Id              uuid.UUID
	PhotographerId  uuid.UUID
	ClientName      string
	ClientEmail     string
	StartsAt        time.Time
	EndsAt          time.Time
	Location        string
	Notes           string
	Status          BookingStatus
	CalendarEventId *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
