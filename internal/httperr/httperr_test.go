package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBusinessErrorDefaults(t *testing.T) {
	err := ErrBusiness(CodeAlreadyMarked)
	be, ok := AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, be.Status)
	assert.Equal(t, "Attendance already marked for this date", be.Message)
	assert.True(t, IsBusiness(fmt.Errorf("wrapped: %w", err), CodeAlreadyMarked))
	assert.False(t, IsBusiness(err, CodeEmailExists))
}

func TestMissingListsFields(t *testing.T) {
	be, _ := AsBusiness(Missing("memberId", "date"))
	assert.Equal(t, CodeValidation, be.Code)
	assert.Equal(t, "memberId and date are required", be.Message)
	assert.Len(t, be.Fields, 2)
}

func TestRespondHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"errorCode":"internal_error","message":"Something went wrong"}`, w.Body.String())
}

func TestFromBindingReportsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var r req
	err := c.ShouldBindJSON(&r)
	require.Error(t, err)

	be, ok := AsBusiness(FromBinding(err))
	require.True(t, ok)
	assert.Equal(t, CodeValidation, be.Code)
	require.Len(t, be.Fields, 2)
	assert.Equal(t, FieldError{Field: "email", Issue: "invalid_email"}, be.Fields[0])
	assert.Equal(t, FieldError{Field: "password", Issue: "required"}, be.Fields[1])
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueViolation(nil))
}
