package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-saas/internal/auth"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

var tokens = auth.NewTokenIssuer("test-secret", time.Hour)

func init() {
	gin.SetMode(gin.TestMode)
}

type body struct {
	Success bool   `json:"success"`
	Code    string `json:"errorCode"`
	Message string `json:"message"`
}

func serve(t *testing.T, r *gin.Engine, path, token string) (*httptest.ResponseRecorder, body) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	}
	return w, b
}

func issue(t *testing.T, role access.Role, gymID *uuid.UUID) string {
	t.Helper()
	raw, _, err := tokens.Issue(access.Identity{UserID: uuid.New(), Role: role, GymID: gymID})
	require.NoError(t, err)
	return raw
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(), Recovery())
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/x", handlers...)
	return r
}

// --------------------------------------------------
// Authentication / roles
// --------------------------------------------------

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware(tokens))

	w, b := serve(t, r, "/x", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, httperr.CodeUnauthorized, b.Code)
	assert.False(t, b.Success)

	w, b = serve(t, r, "/x", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, httperr.CodeInvalidToken, b.Code)

	foreign, _, err := auth.NewTokenIssuer("other", time.Hour).
		Issue(access.Identity{UserID: uuid.New(), Role: access.RoleOwner})
	require.NoError(t, err)
	_, b = serve(t, r, "/x", foreign)
	assert.Equal(t, httperr.CodeInvalidToken, b.Code)

	w, _ = serve(t, r, "/x", issue(t, access.RoleOwner, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	gymID := uuid.New()
	var got access.Identity

	r := gin.New()
	r.GET("/x", AuthMiddleware(tokens), func(c *gin.Context) {
		got, _ = IdentityFrom(c)
		c.Status(http.StatusOK)
	})

	w, _ := serve(t, r, "/x", issue(t, access.RoleStaff, &gymID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, access.RoleStaff, got.Role)
	require.NotNil(t, got.GymID)
	assert.Equal(t, gymID, *got.GymID)
}

func TestRequireRoles(t *testing.T) {
	r := newEngine(AuthMiddleware(tokens), RequireRoles(access.RoleSuperUser))

	w, b := serve(t, r, "/x", issue(t, access.RoleOwner, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, httperr.CodeForbidden, b.Code)

	w, _ = serve(t, r, "/x", issue(t, access.RoleSuperUser, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --------------------------------------------------
// Quota gates
// --------------------------------------------------

type fakeQuotas struct {
	member   plan.Decision
	staff    plan.Decision
	features map[plan.Feature]bool
	err      error
}

func (f fakeQuotas) CanAddMember(context.Context, uuid.UUID) (plan.Decision, error) {
	return f.member, f.err
}

func (f fakeQuotas) CanAddStaff(context.Context, uuid.UUID) (plan.Decision, error) {
	return f.staff, f.err
}

func (f fakeQuotas) HasFeature(_ context.Context, _ uuid.UUID, feat plan.Feature) (bool, error) {
	return f.features[feat], f.err
}

type countingRejections map[string]int

func (c countingRejections) QuotaRejected(kind string) { c[kind]++ }

func TestMemberLimitRejectsWithReason(t *testing.T) {
	counter := countingRejections{}
	gate := NewQuotaGate(fakeQuotas{member: plan.Decision{Reason: "Plan limit reached. You cannot add more members"}}, counter)
	r := newEngine(AuthMiddleware(tokens), gate.MemberLimit())

	gymID := uuid.New()
	w, b := serve(t, r, "/x", issue(t, access.RoleStaff, &gymID))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, httperr.CodePlanLimitExceeded, b.Code)
	assert.Equal(t, "Plan limit reached. You cannot add more members", b.Message)
	assert.Equal(t, 1, counter["member"])
}

func TestStaffLimitAllows(t *testing.T) {
	gate := NewQuotaGate(fakeQuotas{staff: plan.Decision{Allowed: true}}, nil)
	r := newEngine(AuthMiddleware(tokens), gate.StaffLimit())

	gymID := uuid.New()
	w, _ := serve(t, r, "/x", issue(t, access.RoleOwner, &gymID))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireFeature(t *testing.T) {
	counter := countingRejections{}
	gate := NewQuotaGate(fakeQuotas{features: map[plan.Feature]bool{plan.FeatureReports: true}}, counter)
	gymID := uuid.New()
	token := issue(t, access.RoleOwner, &gymID)

	w, b := serve(t, newEngine(AuthMiddleware(tokens), gate.RequireFeature(plan.FeatureAttendance)), "/x", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, httperr.CodeFeatureNotAvailable, b.Code)
	assert.Equal(t, "attendance is not available on your plan", b.Message)
	assert.Equal(t, 1, counter["feature:attendance"])

	w, _ = serve(t, newEngine(AuthMiddleware(tokens), gate.RequireFeature(plan.FeatureReports)), "/x", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestQuotaGateNeedsTenant(t *testing.T) {
	gate := NewQuotaGate(fakeQuotas{member: plan.Decision{Allowed: true}}, nil)
	r := newEngine(AuthMiddleware(tokens), gate.MemberLimit())

	w, b := serve(t, r, "/x", issue(t, access.RoleSuperUser, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, httperr.CodeValidation, b.Code)
}

func TestQuotaGatePropagatesTenantNotFound(t *testing.T) {
	gate := NewQuotaGate(fakeQuotas{err: httperr.ErrTenantNotFound}, nil)
	r := newEngine(AuthMiddleware(tokens), gate.MemberLimit())

	gymID := uuid.New()
	w, b := serve(t, r, "/x", issue(t, access.RoleOwner, &gymID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, httperr.CodeTenantNotFound, b.Code)
}

// --------------------------------------------------
// Bootstrap guard
// --------------------------------------------------

type superUsers bool

func (s superUsers) SuperUserExists(context.Context) (bool, error) { return bool(s), nil }

func TestSuperUserOrBootstrap(t *testing.T) {
	cases := []struct {
		name      string
		exists    bool
		bootstrap bool
		token     string
		want      int
	}{
		{"bootstrap open with no super user", false, true, "", http.StatusNoContent},
		{"bootstrap closed once a super user exists", true, true, "", http.StatusUnauthorized},
		{"bootstrap disabled", false, false, "", http.StatusUnauthorized},
		{"owner token refused", false, true, issue(t, access.RoleOwner, nil), http.StatusForbidden},
		{"super user token accepted", true, false, issue(t, access.RoleSuperUser, nil), http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(SuperUserOrBootstrap(tokens, superUsers(tc.exists), tc.bootstrap))
			w, _ := serve(t, r, "/x", tc.token)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

// --------------------------------------------------
// Error translation
// --------------------------------------------------

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		abort(c, errors.New("pq: connection refused"))
	})

	w, b := serve(t, r, "/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, httperr.CodeInternal, b.Code)
	assert.Equal(t, "Something went wrong", b.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRecoveryRendersInternalError(t *testing.T) {
	r := newEngine(func(c *gin.Context) { panic("boom") })

	w, b := serve(t, r, "/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, httperr.CodeInternal, b.Code)
}

func TestRequestIDPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(zapNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)
}

func zapNop() *zap.Logger { return zap.NewNop() }

func TestCORSAllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.gym.io/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		origin string
		want   string
	}{
		{"https://app.gym.io", "https://app.gym.io"},
		{"https://evil.example", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", tc.origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.want, w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.io")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://anywhere.io", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}
