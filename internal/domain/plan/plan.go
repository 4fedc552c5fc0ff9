package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ===============================
// Keys / features
// ===============================

type Key string

const (
	Free  Key = "FREE"
	Basic Key = "BASIC"
	Pro   Key = "PRO"
)

// Default is the plan a newly created gym starts on.
const Default = Free

func ParseKey(s string) (Key, bool) {
	k := Key(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := table[k]
	return k, ok
}

type Feature string

const (
	FeatureAttendance Feature = "attendance"
	FeatureReports    Feature = "reports"
)

// ===============================
// Quota
// ===============================

// Quota is a resource ceiling. Unlimited never rejects.
type Quota int

const Unlimited Quota = -1

// Allows is an exclusive upper bound: a tenant already holding q resources
// cannot add another.
func (q Quota) Allows(count int64) bool {
	if q == Unlimited {
		return true
	}
	return count < int64(q)
}

func (q Quota) MarshalJSON() ([]byte, error) {
	if q == Unlimited {
		return []byte("null"), nil
	}
	return json.Marshal(int(q))
}

func (q Quota) String() string {
	if q == Unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("%d", int(q))
}

// ===============================
// Plan table
// ===============================

type Limits struct {
	Attendance bool  `json:"attendance"`
	Reports    bool  `json:"reports"`
	MaxMembers Quota `json:"maxMembers"`
	MaxStaff   Quota `json:"maxStaff"`
}

type Plan struct {
	Key    Key    `json:"plan"`
	Limits Limits `json:"limits"`
}

var table = map[Key]Limits{
	Free: {
		Attendance: false,
		Reports:    false,
		MaxMembers: 4,
		MaxStaff:   11,
	},
	Basic: {
		Attendance: true,
		Reports:    true,
		MaxMembers: 100,
		MaxStaff:   5,
	},
	Pro: {
		Attendance: true,
		Reports:    true,
		MaxMembers: 300,
		MaxStaff:   Unlimited,
	},
}

// Lookup returns a copy of the static definition for k.
func Lookup(k Key) (Plan, bool) {
	l, ok := table[k]
	if !ok {
		return Plan{}, false
	}
	return Plan{Key: k, Limits: l}, true
}

func Keys() []Key {
	return []Key{Free, Basic, Pro}
}

// ===============================
// Decisions
// ===============================

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func (p Plan) CanAddMember(current int64) Decision {
	if p.Limits.MaxMembers.Allows(current) {
		return allow()
	}
	return Decision{Reason: "Plan limit reached. You cannot add more members"}
}

func (p Plan) CanAddStaff(current int64) Decision {
	if p.Limits.MaxStaff.Allows(current) {
		return allow()
	}
	return Decision{
		Reason: fmt.Sprintf(
			"Plan limit reached. Maximum %s staff members are allowed for %s plan",
			p.Limits.MaxStaff, p.Key,
		),
	}
}

// Has reports whether the plan includes f. Unknown features are never included.
func (p Plan) Has(f Feature) bool {
	switch f {
	case FeatureAttendance:
		return p.Limits.Attendance
	case FeatureReports:
		return p.Limits.Reports
	}
	return false
}

// Resolve returns the definition for k, falling back to the default plan for
// keys the table does not know.
func Resolve(k Key) Plan {
	if p, ok := Lookup(k); ok {
		return p
	}
	p, _ := Lookup(Default)
	return p
}

// Check decides whether one more resource fits given the current count.
// Plan.CanAddMember and Plan.CanAddStaff satisfy it as method expressions.
type Check func(p Plan, current int64) Decision
