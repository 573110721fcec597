package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	ts := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-15T08:30:00Z", FormatTimeForDB(ts))
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.Nil(t, FormatTimePtrForDB(nil))

	ts := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-15T08:30:00Z", FormatTimePtrForDB(&ts))
}

func TestParseTimeFromDB_RoundTrip(t *testing.T) {
	original := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("not a timestamp")
	assert.Error(t, err)
}

func TestBoolToInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
}
