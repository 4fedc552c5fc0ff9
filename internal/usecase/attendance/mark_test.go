package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/infra/repository"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/testutil"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

type fixture struct {
	mark   *MarkAttendance
	list   *ListMemberAttendance
	byDay  *ListAttendanceByDate
	update *UpdateAttendance
	actor  access.Identity
	member *models.Member
	gym    *models.Gym
}

var now = time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	gym := testutil.Gym(t, db, plan.Basic)
	owner := testutil.User(t, db, access.RoleOwner, &gym.ID, "owner@gym.test", "x")

	repo := repository.NewAttendanceGormRepository(db)
	clock := timezone.NewClock("UTC").WithNow(func() time.Time { return now })

	return fixture{
		mark:   NewMarkAttendance(repo, clock, audit.Nop{}),
		list:   NewListMemberAttendance(repo, clock),
		byDay:  NewListAttendanceByDate(repo, clock),
		update: NewUpdateAttendance(repo, audit.Nop{}),
		actor:  owner.Identity(),
		member: testutil.Member(t, db, gym.ID, "Alice"),
		gym:    gym,
	}
}

func TestMarkAttendance(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.mark.Execute(ctx, f.actor, MarkAttendanceInput{
		MemberID: f.member.ID,
		Date:     "2026-05-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRESENT", a.Status)
	assert.Equal(t, f.actor.UserID, a.MarkedByID)
	assert.Equal(t, f.gym.ID, a.GymID)

	_, err = f.mark.Execute(ctx, f.actor, MarkAttendanceInput{
		MemberID: f.member.ID,
		Date:     "2026-05-20",
		Status:   "LATE",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyMarked))
}

func TestMarkAttendanceRejections(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   MarkAttendanceInput
		code string
	}{
		{"missing fields", MarkAttendanceInput{}, httperr.CodeValidation},
		{"bad date", MarkAttendanceInput{MemberID: f.member.ID, Date: "20/05/2026"}, httperr.CodeValidation},
		{"future date", MarkAttendanceInput{MemberID: f.member.ID, Date: "2026-05-21"}, httperr.CodeFutureDate},
		{"bad status", MarkAttendanceInput{MemberID: f.member.ID, Date: "2026-05-19", Status: "SICK"}, httperr.CodeValidation},
		{"unknown member", MarkAttendanceInput{MemberID: uuid.New(), Date: "2026-05-19"}, httperr.CodeMemberNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.mark.Execute(ctx, f.actor, tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestMarkAttendanceListsOnlyMissingFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   MarkAttendanceInput
		want []string
	}{
		{"both", MarkAttendanceInput{}, []string{"memberId", "date"}},
		{"member only", MarkAttendanceInput{Date: "2026-05-19"}, []string{"memberId"}},
		{"date only", MarkAttendanceInput{MemberID: f.member.ID, Date: "  "}, []string{"date"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.mark.Execute(ctx, f.actor, tc.in)
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, httperr.CodeValidation, be.Code)

			fields := make([]string, 0, len(be.Fields))
			for _, fe := range be.Fields {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tc.want, fields)
		})
	}
}

func TestMarkAttendanceOtherTenantMember(t *testing.T) {
	f := setup(t)
	otherGym := uuid.New()
	stranger := access.Identity{UserID: uuid.New(), Role: access.RoleStaff, GymID: &otherGym}

	_, err := f.mark.Execute(context.Background(), stranger, MarkAttendanceInput{
		MemberID: f.member.ID,
		Date:     "2026-05-19",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMemberNotFound))
}

func TestListAndUpdateAttendance(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, day := range []string{"2026-05-18", "2026-05-19", "2026-05-20"} {
		_, err := f.mark.Execute(ctx, f.actor, MarkAttendanceInput{MemberID: f.member.ID, Date: day})
		require.NoError(t, err)
	}

	records, err := f.list.Execute(ctx, f.gym.ID, f.member.ID, "2026-05-19", "2026-05-20")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	day, today, err := f.byDay.Execute(ctx, f.gym.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-20", day.Format(timezone.DayLayout))
	require.Len(t, today, 1)

	updated, err := f.update.Execute(ctx, f.actor, today[0].ID, "excused")
	require.NoError(t, err)
	assert.Equal(t, "EXCUSED", updated.Status)

	_, err = f.update.Execute(ctx, f.actor, today[0].ID, "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}
