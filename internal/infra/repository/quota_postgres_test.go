package repository

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/config"
	"github.com/BruksfildServices01/gym-saas/internal/db"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/testutil"
)

// SQLite drops FOR UPDATE, so the gym row lock is only exercised here.
func postgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := db.NewDB(&config.Config{DBUrl: dsn, Env: "test", LogLevel: "error"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

// race runs n creators at once and splits their results.
func race(t *testing.T, n int, create func(i int) error) (created, rejected int) {
	t.Helper()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			err := create(i)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case httperr.IsBusiness(err, httperr.CodePlanLimitExceeded):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	return created, rejected
}

func TestConcurrentMemberCreatesStopAtPlanLimit(t *testing.T) {
	gdb := postgresDB(t)
	repo := NewMemberGormRepository(gdb)
	gym := testutil.Gym(t, gdb, plan.Free)
	t.Cleanup(func() {
		gdb.Where("gym_id = ?", gym.ID).Delete(&models.Member{})
		gdb.Delete(&models.Gym{}, "id = ?", gym.ID)
	})

	created, rejected := race(t, 10, func(i int) error {
		return repo.CreateWithinQuota(ctx, newMember(gym.ID, fmt.Sprintf("Member %d", i)), plan.Plan.CanAddMember)
	})

	assert.Equal(t, 4, created)
	assert.Equal(t, 6, rejected)

	n, err := NewGymGormRepository(gdb).CountMembers(ctx, gym.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestConcurrentStaffCreatesStopAtPlanLimit(t *testing.T) {
	gdb := postgresDB(t)
	repo := NewUserGormRepository(gdb)
	gym := testutil.Gym(t, gdb, plan.Basic)
	t.Cleanup(func() {
		gdb.Where("gym_id = ?", gym.ID).Delete(&models.User{})
		gdb.Delete(&models.Gym{}, "id = ?", gym.ID)
	})

	created, rejected := race(t, 8, func(i int) error {
		return repo.CreateStaffWithinQuota(ctx, &models.User{
			GymID:        &gym.ID,
			Email:        uuid.NewString() + "@race.test",
			Username:     fmt.Sprintf("staff%d", i),
			Name:         "Staff",
			PasswordHash: "x",
			Role:         access.RoleStaff,
		}, plan.Plan.CanAddStaff)
	})

	assert.Equal(t, 5, created)
	assert.Equal(t, 3, rejected)
}
