package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)

	d, err = Parse("2025-03-09T17:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)

	_, err = Parse("09/03/2025")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	d, err := ParseOptional("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptional("2025-01-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2025-01-01", Format(*d))
}

func TestToday_UsesClock(t *testing.T) {
	old := Clock
	defer func() { Clock = old }()
	Clock = func() time.Time { return time.Date(2025, 7, 4, 23, 59, 0, 0, time.UTC) }

	assert.Equal(t, "2025-07-04", Format(Today()))
}
