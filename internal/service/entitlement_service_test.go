package service

import (
	"context"
	"errors"
	"testing"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/contract"
	"photofolio-be/internal/repository/memory"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"
	"photofolio-be/pkg/entitlement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUserRepo struct {
	contract.UserRepository
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			return f.users[byId.ID], nil
		}
	}
	return nil, nil
}

type fakePlanRepo struct {
	contract.PlanRepository
	plans  map[uuid.UUID]*entity.Plan
	grants map[uuid.UUID][]*entity.PlanFeature
}

func (f *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			return f.plans[byId.ID], nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindBySlug(ctx context.Context, slug string) (*entity.Plan, error) {
	for _, p := range f.plans {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindGrants(ctx context.Context, planId uuid.UUID) ([]*entity.PlanFeature, error) {
	return f.grants[planId], nil
}

type fakeOverrideRepo struct {
	contract.OverrideRepository
	byUser map[uuid.UUID][]*entity.FeatureOverride
}

func (f *fakeOverrideRepo) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.FeatureOverride, error) {
	return f.byUser[userId], nil
}

type fakeFeatureRepo struct {
	contract.FeatureRepository
	features []*entity.Feature
}

func (f *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	return f.features, nil
}

type fakeUow struct {
	unitofwork.UnitOfWork
	users     *fakeUserRepo
	plans     *fakePlanRepo
	overrides *fakeOverrideRepo
	features  *fakeFeatureRepo
}

func (f *fakeUow) UserRepository() contract.UserRepository         { return f.users }
func (f *fakeUow) PlanRepository() contract.PlanRepository         { return f.plans }
func (f *fakeUow) OverrideRepository() contract.OverrideRepository { return f.overrides }
func (f *fakeUow) FeatureRepository() contract.FeatureRepository   { return f.features }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

// --- helpers ---

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

type fixture struct {
	svc       IEntitlementService
	users     *fakeUserRepo
	plans     *fakePlanRepo
	overrides *fakeOverrideRepo
	features  *fakeFeatureRepo

	freePlan *entity.Plan
	proPlan  *entity.Plan
	featIds  map[string]uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	featIds := map[string]uuid.UUID{
		"calendarSync":     uuid.New(),
		"maxScenaProjects": uuid.New(),
		"clientGalleries":  uuid.New(),
	}

	free := &entity.Plan{Id: uuid.New(), Name: "Free", Slug: "free", IsActive: true}
	pro := &entity.Plan{Id: uuid.New(), Name: "Pro", Slug: "pro", IsActive: true}

	f := &fixture{
		users: &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		plans: &fakePlanRepo{
			plans: map[uuid.UUID]*entity.Plan{free.Id: free, pro.Id: pro},
			grants: map[uuid.UUID][]*entity.PlanFeature{
				free.Id: {
					{PlanId: free.Id, FeatureId: featIds["calendarSync"], FeatureKey: "calendarSync", Enabled: false},
					{PlanId: free.Id, FeatureId: featIds["maxScenaProjects"], FeatureKey: "maxScenaProjects", Enabled: true, Limit: intPtr(1)},
				},
				pro.Id: {
					{PlanId: pro.Id, FeatureId: featIds["calendarSync"], FeatureKey: "calendarSync", Enabled: true},
					{PlanId: pro.Id, FeatureId: featIds["maxScenaProjects"], FeatureKey: "maxScenaProjects", Enabled: true, Limit: intPtr(entitlement.Unlimited)},
				},
			},
		},
		overrides: &fakeOverrideRepo{byUser: map[uuid.UUID][]*entity.FeatureOverride{}},
		features: &fakeFeatureRepo{features: []*entity.Feature{
			{Id: featIds["calendarSync"], Key: "calendarSync", IsActive: true},
			{Id: featIds["maxScenaProjects"], Key: "maxScenaProjects", IsActive: true},
			{Id: featIds["clientGalleries"], Key: "clientGalleries", IsActive: true},
		}},
		freePlan: free,
		proPlan:  pro,
		featIds:  featIds,
	}

	uow := &fakeUow{users: f.users, plans: f.plans, overrides: f.overrides, features: f.features}
	f.svc = NewEntitlementService(&fakeFactory{uow: uow}, memory.NewCatalogCache(), nopLogger{})
	return f
}

func (f *fixture) addUser(u *entity.User) *entity.User {
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	if u.Role == "" {
		u.Role = entity.UserRoleUser
	}
	f.users.users[u.Id] = u
	return u
}

// --- tests ---

func TestResolveFeaturesPlanOnly(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{PlanId: &f.proPlan.Id})

	res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.NoError(t, err)

	assert.Equal(t, "pro", res.PlanSlug)
	assert.True(t, res.Features.CanUse("calendarSync"))

	limit, ok := res.Features.Limit("maxScenaProjects")
	require.True(t, ok)
	assert.Equal(t, entitlement.Unlimited, limit)
}

func TestResolveFeaturesFallsBackToFree(t *testing.T) {
	f := newFixture(t)

	t.Run("no plan assigned", func(t *testing.T) {
		user := f.addUser(&entity.User{})
		res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
		require.NoError(t, err)
		assert.Equal(t, "free", res.PlanSlug)
		assert.False(t, res.Features.CanUse("calendarSync"))
	})

	t.Run("assigned plan deleted", func(t *testing.T) {
		gone := uuid.New()
		user := f.addUser(&entity.User{PlanId: &gone})
		res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
		require.NoError(t, err)
		assert.Equal(t, "free", res.PlanSlug)
	})

	t.Run("assigned plan inactive", func(t *testing.T) {
		retired := &entity.Plan{Id: uuid.New(), Slug: "legacy-pro", IsActive: false}
		f.plans.plans[retired.Id] = retired
		user := f.addUser(&entity.User{PlanId: &retired.Id})
		res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
		require.NoError(t, err)
		assert.Equal(t, "free", res.PlanSlug)
	})
}

func TestResolveFeaturesMissingFreePlanIsError(t *testing.T) {
	f := newFixture(t)
	delete(f.plans.plans, f.freePlan.Id)
	user := f.addUser(&entity.User{})

	_, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entitlement.ErrPlanNotFound))
}

func TestResolveFeaturesUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ResolveFeatures(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entitlement.ErrUserNotFound))
}

func TestResolveFeaturesOverrideRowsWinOverLegacyBlob(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{
		PlanId:           &f.freePlan.Id,
		FeatureOverrides: []byte(`{"calendarSync": true, "maxScenaProjects": 3}`),
	})
	f.overrides.byUser[user.Id] = []*entity.FeatureOverride{
		{UserId: user.Id, FeatureId: f.featIds["maxScenaProjects"], FeatureKey: "maxScenaProjects", Limit: intPtr(10)},
	}

	res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.NoError(t, err)

	// Blob covers calendarSync, the audited row wins for maxScenaProjects.
	assert.True(t, res.Features.CanUse("calendarSync"))
	limit, ok := res.Features.Limit("maxScenaProjects")
	require.True(t, ok)
	assert.Equal(t, 10, limit)
}

func TestResolveFeaturesOverrideKeepsPlanFieldWhenNil(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{PlanId: &f.freePlan.Id})
	f.overrides.byUser[user.Id] = []*entity.FeatureOverride{
		// Limit-only override: enabled must stay the plan's value.
		{UserId: user.Id, FeatureId: f.featIds["maxScenaProjects"], FeatureKey: "maxScenaProjects", Limit: intPtr(5)},
	}

	res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.NoError(t, err)

	assert.True(t, res.Features.CanUse("maxScenaProjects"))
	limit, ok := res.Features.Limit("maxScenaProjects")
	require.True(t, ok)
	assert.Equal(t, 5, limit)
}

func TestResolveFeaturesMalformedBlobDegradesToPlan(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{
		PlanId:           &f.freePlan.Id,
		FeatureOverrides: []byte(`{not json`),
	})

	res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.NoError(t, err)

	assert.False(t, res.Features.CanUse("calendarSync"))
	limit, ok := res.Features.Limit("maxScenaProjects")
	require.True(t, ok)
	assert.Equal(t, 1, limit)
}

func TestResolveFeaturesSuperadminBypass(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{Role: entity.UserRoleSuperadmin})

	res, err := f.svc.ResolveFeatures(context.Background(), user.Id)
	require.NoError(t, err)

	// Every active catalog feature, unlimited, regardless of plan config.
	for _, key := range []string{"calendarSync", "maxScenaProjects", "clientGalleries"} {
		assert.True(t, res.Features.CanUse(key), key)
		limit, ok := res.Features.Limit(key)
		require.True(t, ok, key)
		assert.Equal(t, entitlement.Unlimited, limit, key)
	}
}

func TestCanUseAndGetLimit(t *testing.T) {
	f := newFixture(t)
	user := f.addUser(&entity.User{PlanId: &f.freePlan.Id})
	f.overrides.byUser[user.Id] = []*entity.FeatureOverride{
		{UserId: user.Id, FeatureId: f.featIds["clientGalleries"], FeatureKey: "clientGalleries", Enabled: boolPtr(true), Limit: intPtr(0)},
	}

	ok, err := f.svc.CanUse(context.Background(), user.Id, "clientGalleries")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.CanUse(context.Background(), user.Id, "unknownFeature")
	require.NoError(t, err)
	assert.False(t, ok)

	// Explicit zero limit is a real limit, distinct from "none defined".
	limit, has, err := f.svc.GetLimit(context.Background(), user.Id, "clientGalleries")
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 0, limit)

	_, has, err = f.svc.GetLimit(context.Background(), user.Id, "calendarSync")
	require.NoError(t, err)
	assert.False(t, has)
}
