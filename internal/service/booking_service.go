// FILE: internal/service/booking_service.go
// Client session bookings. When the photographer's plan includes
// calendarSync and a Google Drive account is connected, confirmed
// bookings are mirrored into their primary Google calendar.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/pkg/mailer"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBookingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, userId, bookingId uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.BookingResponse, error)
	Delete(ctx context.Context, userId, bookingId uuid.UUID) error
}

type bookingService struct {
	uowFactory   unitofwork.RepositoryFactory
	entitlement  IEntitlementService
	storage      IStorageService
	emailService mailer.IEmailService
	logger       logger.ILogger
	httpClient   *http.Client
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementSvc IEntitlementService,
	storageSvc IStorageService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IBookingService {
	return &bookingService{
		uowFactory:   uowFactory,
		entitlement:  entitlementSvc,
		storage:      storageSvc,
		emailService: emailService,
		logger:       log,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *bookingService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, errors.New("booking must end after it starts")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking := &entity.Booking{
		Id:             uuid.New(),
		PhotographerId: userId,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Location:       req.Location,
		Notes:          req.Notes,
		Status:         entity.BookingStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendBookingConfirmation(booking.ClientEmail, booking.ClientName, booking.StartsAt); err != nil {
			fmt.Printf("[WARN] Failed to send booking confirmation: %v\n", err)
		}
	}()

	return bookingToResponse(booking), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, userId, bookingId uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.ownedBooking(ctx, uow, userId, bookingId)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatus(req.Status)
	booking.UpdatedAt = time.Now()

	if booking.Status == entity.BookingStatusConfirmed && booking.CalendarEventId == nil {
		s.syncToCalendar(ctx, userId, booking)
	}

	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendBookingStatusUpdate(booking.ClientEmail, booking.ClientName, string(booking.Status)); err != nil {
			fmt.Printf("[WARN] Failed to send booking update: %v\n", err)
		}
	}()

	return bookingToResponse(booking), nil
}

func (s *bookingService) List(ctx context.Context, userId uuid.UUID) ([]*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookings, err := uow.BookingRepository().FindAll(ctx,
		specification.Filter("photographer_id", userId),
		specification.OrderBy{Field: "starts_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingToResponse(b))
	}
	return result, nil
}

func (s *bookingService) Delete(ctx context.Context, userId, bookingId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.ownedBooking(ctx, uow, userId, bookingId)
	if err != nil {
		return err
	}

	return uow.BookingRepository().Delete(ctx, booking.Id)
}

func (s *bookingService) ownedBooking(ctx context.Context, uow unitofwork.UnitOfWork, userId, bookingId uuid.UUID) (*entity.Booking, error) {
	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByID{ID: bookingId},
		specification.Filter("photographer_id", userId),
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.New("booking not found")
	}
	return booking, nil
}

// syncToCalendar mirrors the booking into Google Calendar. Any failure is
// logged and swallowed; calendar sync never blocks a booking update.
func (s *bookingService) syncToCalendar(ctx context.Context, userId uuid.UUID, booking *entity.Booking) {
	canSync, err := s.entitlement.CanUse(ctx, userId, "calendarSync")
	if err != nil || !canSync {
		return
	}

	token, err := s.storage.AccessToken(ctx, userId, string(entity.StorageProviderGoogleDrive))
	if err != nil {
		s.logger.Warn("booking", "Calendar sync skipped, no usable Google token", map[string]interface{}{
			"user_id":    userId.String(),
			"booking_id": booking.Id.String(),
		})
		return
	}

	payload := map[string]interface{}{
		"summary":     fmt.Sprintf("Shoot: %s", booking.ClientName),
		"location":    booking.Location,
		"description": booking.Notes,
		"start":       map[string]string{"dateTime": booking.StartsAt.Format(time.RFC3339)},
		"end":         map[string]string{"dateTime": booking.EndsAt.Format(time.RFC3339)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://www.googleapis.com/calendar/v3/calendars/primary/events", bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("booking", "Calendar sync request failed", map[string]interface{}{
			"booking_id": booking.Id.String(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.logger.Warn("booking", "Calendar sync rejected", map[string]interface{}{
			"booking_id": booking.Id.String(),
			"status":     resp.StatusCode,
		})
		return
	}

	var created struct {
		Id string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err == nil && created.Id != "" {
		booking.CalendarEventId = &created.Id
	}
}

func bookingToResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		Id:             b.Id,
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		StartsAt:       b.StartsAt,
		EndsAt:         b.EndsAt,
		Location:       b.Location,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CalendarSynced: b.CalendarEventId != nil,
		CreatedAt:      b.CreatedAt,
	}
}
