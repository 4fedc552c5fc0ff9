package access

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleSuperUser Role = "SUPER_USER"
	RoleOwner     Role = "OWNER"
	RoleStaff     Role = "STAFF"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperUser, RoleOwner, RoleStaff:
		return true
	}
	return false
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Authorize reports whether role is one of allowed. An empty allowed set denies.
func Authorize(role Role, allowed ...Role) bool {
	if !role.Valid() {
		return false
	}
	return slices.Contains(allowed, role)
}

// ===============================
// Identity
// ===============================

// Identity is what a verified session token resolves to.
type Identity struct {
	UserID uuid.UUID
	Role   Role
	GymID  *uuid.UUID
}

// Tenant returns the gym the identity is scoped to. SUPER_USER identities have none.
func (i Identity) Tenant() (uuid.UUID, bool) {
	if i.GymID == nil || *i.GymID == uuid.Nil {
		return uuid.Nil, false
	}
	return *i.GymID, true
}
