package quota

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type fakeStore struct {
	gyms    map[uuid.UUID]*models.Gym
	members map[uuid.UUID]int64
	staff   map[uuid.UUID]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		gyms:    map[uuid.UUID]*models.Gym{},
		members: map[uuid.UUID]int64{},
		staff:   map[uuid.UUID]int64{},
	}
}

func (f *fakeStore) add(k plan.Key) uuid.UUID {
	id := uuid.New()
	g := &models.Gym{Plan: k}
	g.ID = id
	f.gyms[id] = g
	return id
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Gym, error) {
	g, ok := f.gyms[id]
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}
	return g, nil
}

func (f *fakeStore) CountMembers(_ context.Context, id uuid.UUID) (int64, error) {
	return f.members[id], nil
}

func (f *fakeStore) CountStaff(_ context.Context, id uuid.UUID) (int64, error) {
	return f.staff[id], nil
}

func TestGetPlanUnknownTenant(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.GetPlan(context.Background(), uuid.New())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTenantNotFound))
}

func TestCanAddMemberStopsAtLimit(t *testing.T) {
	store := newFakeStore()
	id := store.add(plan.Free)
	svc := NewService(store)
	ctx := context.Background()

	store.members[id] = 3
	d, err := svc.CanAddMember(ctx, id)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	store.members[id] = 4
	d, err = svc.CanAddMember(ctx, id)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Plan limit reached. You cannot add more members", d.Reason)
}

func TestCanAddStaff(t *testing.T) {
	store := newFakeStore()
	basic := store.add(plan.Basic)
	pro := store.add(plan.Pro)
	svc := NewService(store)
	ctx := context.Background()

	store.staff[basic] = 5
	d, err := svc.CanAddStaff(ctx, basic)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "Maximum 5 staff members are allowed for BASIC plan")

	store.staff[pro] = 1_000_000
	d, err = svc.CanAddStaff(ctx, pro)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestPlanChangeAppliesOnNextCheck(t *testing.T) {
	store := newFakeStore()
	id := store.add(plan.Free)
	svc := NewService(store)
	ctx := context.Background()

	ok, err := svc.HasFeature(ctx, id, plan.FeatureAttendance)
	require.NoError(t, err)
	assert.False(t, ok)

	store.gyms[id].Plan = plan.Basic

	ok, err = svc.HasFeature(ctx, id, plan.FeatureAttendance)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUsage(t *testing.T) {
	store := newFakeStore()
	id := store.add(plan.Pro)
	store.members[id] = 12
	store.staff[id] = 2

	u, err := NewService(store).Usage(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, Usage{Members: 12, Staff: 2}, u)
}
