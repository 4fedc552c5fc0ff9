package httperr

import (
	"errors"
	"net/http"
)

// FieldError names one missing or malformed input field.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type BusinessError struct {
	Code    string
	Status  int
	Message string
	Fields  []FieldError
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// ErrBusiness builds an error for a well-known code using its default status
// and message.
func ErrBusiness(code string) error {
	return newError(code, "")
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ===============================
// Codes
// ===============================

const (
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeInvalidToken        = "invalid_token"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeForbidden           = "forbidden"
	CodeFeatureNotAvailable = "feature_not_available"
	CodePlanLimitExceeded   = "plan_limit_exceeded"
	CodeNotFound            = "not_found"
	CodeTenantNotFound      = "tenant_not_found"
	CodeMemberNotFound      = "member_not_found"
	CodeAttendanceNotFound  = "attendance_not_found"
	CodeEmailExists         = "email_exists"
	CodeAlreadyMarked       = "already_marked"
	CodeInvalidAmounts      = "invalid_amounts"
	CodeFutureDate          = "future_date"
	CodeTooManyAttempts     = "too_many_attempts"
	CodeInternal            = "internal_error"
)

type entry struct {
	status  int
	message string
}

var catalog = map[string]entry{
	CodeValidation:          {http.StatusBadRequest, "Invalid request"},
	CodeUnauthorized:        {http.StatusUnauthorized, "Unauthorized"},
	CodeInvalidToken:        {http.StatusUnauthorized, "Invalid token"},
	CodeInvalidCredentials:  {http.StatusUnauthorized, "Invalid email or password"},
	CodeForbidden:           {http.StatusForbidden, "Access denied"},
	CodeFeatureNotAvailable: {http.StatusForbidden, "Feature is not available on your plan"},
	CodePlanLimitExceeded:   {http.StatusForbidden, "Plan limit reached"},
	CodeNotFound:            {http.StatusNotFound, "Resource not found"},
	CodeTenantNotFound:      {http.StatusNotFound, "Gym not found"},
	CodeMemberNotFound:      {http.StatusNotFound, "Gym member not found"},
	CodeAttendanceNotFound:  {http.StatusNotFound, "Attendance record not found"},
	CodeEmailExists:         {http.StatusConflict, "Email already exists"},
	CodeAlreadyMarked:       {http.StatusConflict, "Attendance already marked for this date"},
	CodeInvalidAmounts:      {http.StatusBadRequest, "Invalid fee amounts"},
	CodeFutureDate:          {http.StatusBadRequest, "Future dates are not allowed"},
	CodeTooManyAttempts:     {http.StatusTooManyRequests, "Too many login attempts, try again later"},
	CodeInternal:            {http.StatusInternalServerError, "Something went wrong"},
}

func newError(code, message string) BusinessError {
	s, ok := catalog[code]
	if !ok {
		s = catalog[CodeInternal]
	}
	if message == "" {
		message = s.message
	}
	return BusinessError{Code: code, Status: s.status, Message: message}
}

// ===============================
// Constructors
// ===============================

var (
	ErrUnauthorized       = newError(CodeUnauthorized, "")
	ErrInvalidToken       = newError(CodeInvalidToken, "")
	ErrInvalidCredentials = newError(CodeInvalidCredentials, "")
	ErrForbidden          = newError(CodeForbidden, "")
	ErrTenantNotFound     = newError(CodeTenantNotFound, "")
	ErrMemberNotFound     = newError(CodeMemberNotFound, "")
	ErrAttendanceNotFound = newError(CodeAttendanceNotFound, "")
	ErrEmailExists        = newError(CodeEmailExists, "")
	ErrAlreadyMarked      = newError(CodeAlreadyMarked, "")
	ErrFutureDate         = newError(CodeFutureDate, "")
	ErrTooManyAttempts    = newError(CodeTooManyAttempts, "")
	ErrInternal           = newError(CodeInternal, "")
)

func Validation(message string, fields ...FieldError) error {
	e := newError(CodeValidation, message)
	e.Fields = fields
	return e
}

func Missing(fields ...string) error {
	fe := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		fe = append(fe, FieldError{Field: f, Issue: "required"})
	}
	return Validation(joinFields(fields)+" required", fe...)
}

func PlanLimitExceeded(reason string) error {
	return newError(CodePlanLimitExceeded, reason)
}

func FeatureNotAvailable(feature string) error {
	return newError(CodeFeatureNotAvailable, feature+" is not available on your plan")
}

func InvalidAmounts(message string) error {
	return newError(CodeInvalidAmounts, message)
}

func NotFound(message string) error {
	return newError(CodeNotFound, message)
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return "fields"
	case 1:
		return fields[0] + " is"
	}
	out := fields[0]
	for i := 1; i < len(fields)-1; i++ {
		out += ", " + fields[i]
	}
	return out + " and " + fields[len(fields)-1] + " are"
}
