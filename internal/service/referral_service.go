// FILE: internal/service/referral_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"photofolio-be/internal/config"
	"photofolio-be/internal/dto"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type IReferralService interface {
	GetSummary(ctx context.Context, userId uuid.UUID) (*dto.ReferralSummaryResponse, error)
	GetCommissions(ctx context.Context, userId uuid.UUID) ([]*dto.CommissionResponse, error)

	// GetQRCode renders the user's referral link as a PNG.
	GetQRCode(ctx context.Context, userId uuid.UUID) ([]byte, error)
}

type referralService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewReferralService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IReferralService {
	return &referralService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *referralService) referralLink(code string) string {
	return fmt.Sprintf("%s/signup?ref=%s", s.cfg.App.ClientURL, code)
}

func (s *referralService) GetSummary(ctx context.Context, userId uuid.UUID) (*dto.ReferralSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	invited, err := uow.UserRepository().Count(ctx, specification.Filter("referred_by", userId))
	if err != nil {
		return nil, err
	}

	commissions, err := uow.ReferralRepository().FindAll(ctx, specification.Filter("referrer_id", userId))
	if err != nil {
		return nil, err
	}

	var earned float64
	for _, c := range commissions {
		earned += c.Amount
	}

	return &dto.ReferralSummaryResponse{
		ReferralCode: user.ReferralCode,
		ReferralLink: s.referralLink(user.ReferralCode),
		TotalInvited: int(invited),
		TotalEarned:  earned,
		Currency:     "usd",
	}, nil
}

func (s *referralService) GetCommissions(ctx context.Context, userId uuid.UUID) ([]*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	commissions, err := uow.ReferralRepository().FindAll(ctx,
		specification.Filter("referrer_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		result = append(result, &dto.CommissionResponse{
			Id:        c.Id,
			Amount:    c.Amount,
			Currency:  c.Currency,
			Status:    string(c.Status),
			CreatedAt: c.CreatedAt,
		})
	}
	return result, nil
}

func (s *referralService) GetQRCode(ctx context.Context, userId uuid.UUID) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return qrcode.Encode(s.referralLink(user.ReferralCode), qrcode.Medium, 256)
}
