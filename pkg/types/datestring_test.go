package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		ds, err := NewDateStringFromString("2025-04-15")
		require.NoError(t, err)
		assert.Equal(t, DateString("2025-04-15"), ds)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewDateStringFromString("15.04.2025")
		assert.Error(t, err)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := NewDateStringFromString("2025-13-01")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := NewDateStringFromString("")
		assert.Error(t, err)
	})
}

func TestNewDateString(t *testing.T) {
	ds := NewDateString(time.Date(2025, 4, 15, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, DateString("2025-04-15"), ds)
}

func TestDateString_Time(t *testing.T) {
	ds := DateString("2025-04-15")
	tm, err := ds.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), tm)
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2025-04-15").IsZero())
}
