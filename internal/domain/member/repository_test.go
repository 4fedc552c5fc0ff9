package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPattern(t *testing.T) {
	cases := map[string]string{
		"  Alice ": "%alice%",
		"100%":     `%100\%%`,
		"a_b":      `%a\_b%`,
		`x\y`:      `%x\\y%`,
	}
	for in, want := range cases {
		assert.Equal(t, want, Filter{Search: in}.Pattern(), in)
	}
}
