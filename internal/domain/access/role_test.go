package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"super user on super user route", RoleSuperUser, []Role{RoleSuperUser}, true},
		{"owner on super user route", RoleOwner, []Role{RoleSuperUser}, false},
		{"staff on owner or staff route", RoleStaff, []Role{RoleOwner, RoleStaff}, true},
		{"staff on owner route", RoleStaff, []Role{RoleOwner}, false},
		{"unknown role", Role("ADMIN"), []Role{RoleOwner, RoleStaff, RoleSuperUser}, false},
		{"empty allowed set", RoleOwner, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Authorize(tc.role, tc.allowed...))
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" staff ")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, r)

	_, ok = ParseRole("SUPER__USER")
	assert.False(t, ok)
}

func TestIdentityTenant(t *testing.T) {
	_, ok := Identity{Role: RoleSuperUser}.Tenant()
	assert.False(t, ok)

	gymID := uuid.New()
	got, ok := Identity{Role: RoleOwner, GymID: &gymID}.Tenant()
	assert.True(t, ok)
	assert.Equal(t, gymID, got)
}
