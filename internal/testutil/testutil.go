// Package testutil builds isolated in-memory databases and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/gym-saas/internal/db"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

// NewDB opens a fresh migrated in-memory database. A single connection keeps
// every query on the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func Gym(t *testing.T, gdb *gorm.DB, k plan.Key) *models.Gym {
	t.Helper()
	g := &models.Gym{
		Name:    "Gym " + uuid.NewString()[:8],
		Address: "1 Main St",
		Status:  models.GymActive,
		Plan:    k,
	}
	require.NoError(t, gdb.Create(g).Error)
	return g
}

func SetPlan(t *testing.T, gdb *gorm.DB, g *models.Gym, k plan.Key) {
	t.Helper()
	require.NoError(t, gdb.Model(g).Update("plan", k).Error)
	g.Plan = k
}

// User stores a user whose password is passwordHash verbatim.
func User(t *testing.T, gdb *gorm.DB, role access.Role, gymID *uuid.UUID, email, passwordHash string) *models.User {
	t.Helper()
	u := &models.User{
		GymID:        gymID,
		Email:        email,
		Username:     email,
		Name:         string(role) + " user",
		PasswordHash: passwordHash,
		Role:         role,
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func Member(t *testing.T, gdb *gorm.DB, gymID uuid.UUID, name string) *models.Member {
	t.Helper()
	m := &models.Member{
		GymID:    gymID,
		Name:     name,
		Phone:    "555-0100",
		Email:    "member@example.com",
		IsActive: true,
		JoinDate: datatypes.Date(timezone.CalendarDay(time.Now())),
	}
	require.NoError(t, gdb.Create(m).Error)
	return m
}

func Fee(t *testing.T, gdb *gorm.DB, m *models.Member, takenBy uuid.UUID, original, paid int64, feeType string) *models.Fee {
	t.Helper()
	f := &models.Fee{
		MemberID:        m.ID,
		GymID:           m.GymID,
		TakenByID:       takenBy,
		OriginalAmount:  decimal.NewFromInt(original),
		AmountPaid:      decimal.NewFromInt(paid),
		DiscountApplied: decimal.Zero,
		Type:            feeType,
	}
	require.NoError(t, gdb.Create(f).Error)
	return f
}
