package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got)

	got, err = ParseStatus("late")
	require.NoError(t, err)
	assert.Equal(t, StatusLate, got)

	_, err = ParseStatus("SICK")
	require.Error(t, err)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeValidation, be.Code)
	assert.Equal(t, "status", be.Fields[0].Field)
}
