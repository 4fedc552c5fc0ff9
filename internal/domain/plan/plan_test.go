package plan

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaIsExclusiveUpperBound(t *testing.T) {
	q := Quota(4)
	assert.True(t, q.Allows(0))
	assert.True(t, q.Allows(3))
	assert.False(t, q.Allows(4))
	assert.False(t, q.Allows(5))
}

func TestUnlimitedQuotaAlwaysAllows(t *testing.T) {
	assert.True(t, Unlimited.Allows(0))
	assert.True(t, Unlimited.Allows(math.MaxInt64))
}

func TestPlanTable(t *testing.T) {
	free, ok := Lookup(Free)
	require.True(t, ok)
	assert.Equal(t, Quota(4), free.Limits.MaxMembers)
	assert.Equal(t, Quota(11), free.Limits.MaxStaff)
	assert.False(t, free.Has(FeatureReports))
	assert.False(t, free.Has(FeatureAttendance))

	basic, ok := Lookup(Basic)
	require.True(t, ok)
	assert.Equal(t, Quota(100), basic.Limits.MaxMembers)
	assert.Equal(t, Quota(5), basic.Limits.MaxStaff)
	assert.True(t, basic.Has(FeatureReports))
	assert.True(t, basic.Has(FeatureAttendance))

	pro, ok := Lookup(Pro)
	require.True(t, ok)
	assert.Equal(t, Quota(300), pro.Limits.MaxMembers)
	assert.Equal(t, Unlimited, pro.Limits.MaxStaff)

	_, ok = Lookup("ENTERPRISE")
	assert.False(t, ok)
}

func TestDecisions(t *testing.T) {
	basic, _ := Lookup(Basic)

	assert.True(t, basic.CanAddMember(99).Allowed)
	d := basic.CanAddMember(100)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Plan limit reached. You cannot add more members", d.Reason)

	d = basic.CanAddStaff(5)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Plan limit reached. Maximum 5 staff members are allowed for BASIC plan", d.Reason)

	pro, _ := Lookup(Pro)
	assert.True(t, pro.CanAddStaff(10_000).Allowed)
}

func TestUnknownFeatureIsNotIncluded(t *testing.T) {
	pro, _ := Lookup(Pro)
	assert.False(t, pro.Has(Feature("exports")))
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("basic")
	assert.True(t, ok)
	assert.Equal(t, Basic, k)

	_, ok = ParseKey("gold")
	assert.False(t, ok)
}

func TestLimitsJSONRendersUnlimitedAsNull(t *testing.T) {
	pro, _ := Lookup(Pro)
	b, err := json.Marshal(pro)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"plan":"PRO","limits":{"attendance":true,"reports":true,"maxMembers":300,"maxStaff":null}}`,
		string(b),
	)
}
