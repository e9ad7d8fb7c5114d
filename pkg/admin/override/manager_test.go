package override

import (
	"context"
	"testing"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/contract"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	contract.UserRepository
	user *entity.User
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return f.user, nil
}

type fakeFeatureRepo struct {
	contract.FeatureRepository
	feature *entity.Feature
}

func (f *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	return f.feature, nil
}

type fakeOverrideRepo struct {
	contract.OverrideRepository
	existing *entity.FeatureOverride
	upserted *entity.FeatureOverride
	deleted  bool
}

func (f *fakeOverrideRepo) FindOne(ctx context.Context, userId, featureId uuid.UUID) (*entity.FeatureOverride, error) {
	return f.existing, nil
}

func (f *fakeOverrideRepo) Upsert(ctx context.Context, o *entity.FeatureOverride) error {
	f.upserted = o
	return nil
}

func (f *fakeOverrideRepo) Delete(ctx context.Context, userId, featureId uuid.UUID) error {
	f.deleted = true
	return nil
}

type fakeLogRepo struct {
	contract.OverrideLogRepository
	logs []*entity.FeatureOverrideLog
}

func (f *fakeLogRepo) Append(ctx context.Context, log *entity.FeatureOverrideLog) error {
	f.logs = append(f.logs, log)
	return nil
}

type fakeUow struct {
	unitofwork.UnitOfWork
	users     *fakeUserRepo
	features  *fakeFeatureRepo
	overrides *fakeOverrideRepo
	logs      *fakeLogRepo
}

func (f *fakeUow) UserRepository() contract.UserRepository               { return f.users }
func (f *fakeUow) FeatureRepository() contract.FeatureRepository         { return f.features }
func (f *fakeUow) OverrideRepository() contract.OverrideRepository       { return f.overrides }
func (f *fakeUow) OverrideLogRepository() contract.OverrideLogRepository { return f.logs }

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:     &fakeUserRepo{user: &entity.User{Id: uuid.New(), Email: "studio@photofolio.dev"}},
		features:  &fakeFeatureRepo{feature: &entity.Feature{Id: uuid.New(), Key: "calendarSync"}},
		overrides: &fakeOverrideRepo{},
		logs:      &fakeLogRepo{},
	}
}

func TestSetAppendsAuditLog(t *testing.T) {
	m := NewManager()
	uow := newFakeUow()
	admin := Admin{Id: uuid.New(), Email: "ops@photofolio.dev", Role: "staff"}
	enabled := true

	ov, err := m.Set(context.Background(), uow, admin, uow.users.user.Id, dto.SetOverrideRequest{
		FeatureId: uow.features.feature.Id,
		Enabled:   &enabled,
	})
	require.NoError(t, err)

	assert.Equal(t, "calendarSync", ov.FeatureKey)
	require.NotNil(t, uow.overrides.upserted)

	require.Len(t, uow.logs.logs, 1)
	log := uow.logs.logs[0]
	assert.Equal(t, "set", log.Action)
	assert.Equal(t, admin.Email, log.AdminEmail)
	assert.Nil(t, log.OldValue)
	require.NotNil(t, log.NewValue)
	assert.JSONEq(t, `{"enabled": true, "limit": null}`, *log.NewValue)
}

func TestSetKeepsExistingRowId(t *testing.T) {
	m := NewManager()
	uow := newFakeUow()
	existingId := uuid.New()
	limit := 3
	uow.overrides.existing = &entity.FeatureOverride{
		Id:         existingId,
		UserId:     uow.users.user.Id,
		FeatureId:  uow.features.feature.Id,
		FeatureKey: "calendarSync",
		Limit:      &limit,
	}

	newLimit := 10
	ov, err := m.Set(context.Background(), uow, Admin{}, uow.users.user.Id, dto.SetOverrideRequest{
		FeatureId: uow.features.feature.Id,
		Limit:     &newLimit,
	})
	require.NoError(t, err)
	assert.Equal(t, existingId, ov.Id)

	require.Len(t, uow.logs.logs, 1)
	require.NotNil(t, uow.logs.logs[0].OldValue)
	assert.JSONEq(t, `{"enabled": null, "limit": 3}`, *uow.logs.logs[0].OldValue)
}

func TestSetRejectsEmptyOverride(t *testing.T) {
	m := NewManager()
	uow := newFakeUow()

	_, err := m.Set(context.Background(), uow, Admin{}, uow.users.user.Id, dto.SetOverrideRequest{
		FeatureId: uow.features.feature.Id,
	})
	require.Error(t, err)
	assert.Empty(t, uow.logs.logs)
}

func TestClearIsNoopWithoutExistingOverride(t *testing.T) {
	m := NewManager()
	uow := newFakeUow()

	err := m.Clear(context.Background(), uow, Admin{}, uow.users.user.Id, uow.features.feature.Id)
	require.NoError(t, err)
	assert.False(t, uow.overrides.deleted)
	assert.Empty(t, uow.logs.logs)
}

func TestClearDeletesAndLogs(t *testing.T) {
	m := NewManager()
	uow := newFakeUow()
	enabled := false
	uow.overrides.existing = &entity.FeatureOverride{
		Id:        uuid.New(),
		UserId:    uow.users.user.Id,
		FeatureId: uow.features.feature.Id,
		Enabled:   &enabled,
	}

	err := m.Clear(context.Background(), uow, Admin{Email: "ops@photofolio.dev"}, uow.users.user.Id, uow.features.feature.Id)
	require.NoError(t, err)
	assert.True(t, uow.overrides.deleted)

	require.Len(t, uow.logs.logs, 1)
	log := uow.logs.logs[0]
	assert.Equal(t, "clear", log.Action)
	require.NotNil(t, log.OldValue)
	assert.Nil(t, log.NewValue)
}
