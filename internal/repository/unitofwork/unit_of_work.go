package unitofwork

import (
	"context"

	"photofolio-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	UserTokenRepository() contract.UserTokenRepository
	FeatureRepository() contract.FeatureRepository
	PlanRepository() contract.PlanRepository
	OverrideRepository() contract.OverrideRepository
	OverrideLogRepository() contract.OverrideLogRepository
	StorageAccountRepository() contract.StorageAccountRepository
	GalleryRepository() contract.GalleryRepository
	ScenaRepository() contract.ScenaRepository
	BookingRepository() contract.BookingRepository
	ReferralRepository() contract.ReferralRepository
}
