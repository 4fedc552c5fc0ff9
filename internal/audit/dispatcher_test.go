package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/testutil"
)

func TestDispatcherDrainsOnClose(t *testing.T) {
	db := testutil.NewDB(t)
	gym := testutil.Gym(t, db, plan.Basic)
	d := NewDispatcher(NewWriter(db), zap.NewNop(), 10)

	for i := 0; i < 3; i++ {
		d.Record(Event{
			GymID:    Ptr(gym.ID),
			UserID:   Ptr(uuid.New()),
			Action:   "member_created",
			Entity:   "member",
			Metadata: map[string]any{"n": i},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	var logs []models.AuditLog
	require.NoError(t, db.Where("gym_id = ?", gym.ID).Find(&logs).Error)
	require.Len(t, logs, 3)
	assert.JSONEq(t, `{"n":0}`, string(logs[0].Metadata))
}

func TestDispatcherIgnoresEventsAfterClose(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(NewWriter(db), zap.NewNop(), 1)
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Record(Event{Action: "late"})
	})
	require.NoError(t, d.Close(context.Background()))

	var n int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&n).Error)
	assert.Zero(t, n)
}
