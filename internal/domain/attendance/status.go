package attendance

import (
	"strings"

	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

// ===============================
// Attendance Status
// ===============================

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusExcused Status = "EXCUSED"
)

// DefaultStatus is used when a mark request carries no status.
const DefaultStatus = StatusPresent

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// ParseStatus normalizes s. An empty value resolves to DefaultStatus.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultStatus, nil
	}
	st := Status(strings.ToUpper(s))
	if !st.Valid() {
		return "", httperr.Validation(
			"Invalid attendance status",
			httperr.FieldError{Field: "status", Issue: "invalid_value"},
		)
	}
	return st, nil
}
