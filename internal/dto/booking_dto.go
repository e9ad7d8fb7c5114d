package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Booking DTOs ---

type CreateBookingRequest struct {
	ClientName  string    `json:"client_name" validate:"required,min=2"`
	ClientEmail string    `json:"client_email" validate:"required,email"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed canceled"`
}

type BookingResponse struct {
	Id              uuid.UUID `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CalendarSynced  bool      `json:"calendar_synced"`
	CreatedAt       time.Time `json:"created_at"`
}
