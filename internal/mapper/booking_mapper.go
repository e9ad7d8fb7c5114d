package mapper

import (
	"photofolio-be/internal/entity"
	"photofolio-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(mdl *model.Booking) *entity.Booking {
	if mdl == nil {
		return nil
	}
	return &entity.Booking{
		Id:              mdl.Id,
		PhotographerId:  mdl.PhotographerId,
		ClientName:      mdl.ClientName,
		ClientEmail:     mdl.ClientEmail,
		StartsAt:        mdl.StartsAt,
		EndsAt:          mdl.EndsAt,
		Location:        mdl.Location,
		Notes:           mdl.Notes,
		Status:          entity.BookingStatus(mdl.Status),
		CalendarEventId: mdl.CalendarEventId,
		CreatedAt:       mdl.CreatedAt,
		UpdatedAt:       mdl.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(e *entity.Booking) *model.Booking {
	if e == nil {
		return nil
	}
	return &model.Booking{
		Id:              e.Id,
		PhotographerId:  e.PhotographerId,
		ClientName:      e.ClientName,
		ClientEmail:     e.ClientEmail,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		Location:        e.Location,
		Notes:           e.Notes,
		Status:          string(e.Status),
		CalendarEventId: e.CalendarEventId,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *BookingMapper) ToEntities(models []*model.Booking) []*entity.Booking {
	entities := make([]*entity.Booking, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type ReferralMapper struct{}

func NewReferralMapper() *ReferralMapper {
	return &ReferralMapper{}
}

func (m *ReferralMapper) ToEntity(mdl *model.ReferralCommission) *entity.ReferralCommission {
	if mdl == nil {
		return nil
	}
	return &entity.ReferralCommission{
		Id:            mdl.Id,
		ReferrerId:    mdl.ReferrerId,
		ReferredId:    mdl.ReferredId,
		PlanId:        mdl.PlanId,
		Amount:        mdl.Amount,
		Currency:      mdl.Currency,
		Status:        entity.CommissionStatus(mdl.Status),
		StripeEventId: mdl.StripeEventId,
		CreatedAt:     mdl.CreatedAt,
	}
}

func (m *ReferralMapper) ToModel(e *entity.ReferralCommission) *model.ReferralCommission {
	if e == nil {
		return nil
	}
	return &model.ReferralCommission{
		Id:            e.Id,
		ReferrerId:    e.ReferrerId,
		ReferredId:    e.ReferredId,
		PlanId:        e.PlanId,
		Amount:        e.Amount,
		Currency:      e.Currency,
		Status:        string(e.Status),
		StripeEventId: e.StripeEventId,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ReferralMapper) ToEntities(models []*model.ReferralCommission) []*entity.ReferralCommission {
	entities := make([]*entity.ReferralCommission, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
