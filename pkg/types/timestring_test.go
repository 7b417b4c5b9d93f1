package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:30am")
		assert.Error(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := NewTimeStringFromString("")
		assert.Error(t, err)
	})
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("14:60").Validate())
	assert.Error(t, TimeString("14-30").Validate())
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:00").IsAfter("14:00"))
	assert.False(t, TimeString("14:00").IsAfter("14:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the same hour", func(t *testing.T) {
		ts, err := TimeString("10:00").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("crosses the hour", func(t *testing.T) {
		ts, err := TimeString("10:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), ts)
	})

	t.Run("invalid base value", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(15)
		assert.Error(t, err)
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 4, 15, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
