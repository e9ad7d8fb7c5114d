package unitofwork

import (
	"context"
	"fmt"

	"photofolio-be/internal/repository/contract"
	"photofolio-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserTokenRepository() contract.UserTokenRepository {
	return implementation.NewUserTokenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeatureRepository() contract.FeatureRepository {
	return implementation.NewFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlanRepository() contract.PlanRepository {
	return implementation.NewPlanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OverrideRepository() contract.OverrideRepository {
	return implementation.NewOverrideRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OverrideLogRepository() contract.OverrideLogRepository {
	return implementation.NewOverrideLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StorageAccountRepository() contract.StorageAccountRepository {
	return implementation.NewStorageAccountRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GalleryRepository() contract.GalleryRepository {
	return implementation.NewGalleryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScenaRepository() contract.ScenaRepository {
	return implementation.NewScenaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookingRepository() contract.BookingRepository {
	return implementation.NewBookingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReferralRepository() contract.ReferralRepository {
	return implementation.NewReferralRepository(u.getDB())
}
