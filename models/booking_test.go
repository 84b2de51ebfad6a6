package models

import (
	"regexp"
	"testing"
	"time"

	"stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("valid future range", func(t *testing.T) {
		b := &Booking{
			CheckInDate:  time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		}
		assert.NoError(t, b.ValidateDates(now))
	})

	t.Run("check-in later today is accepted", func(t *testing.T) {
		b := &Booking{
			CheckInDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		}
		assert.NoError(t, b.ValidateDates(now))
	})

	t.Run("check-in in the past rejected", func(t *testing.T) {
		b := &Booking{
			CheckInDate:  time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		}
		assert.ErrorIs(t, b.ValidateDates(now), errors.ErrInvalidDateRange)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		b := &Booking{
			CheckInDate:  time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		}
		assert.ErrorIs(t, b.ValidateDates(now), errors.ErrInvalidDateRange)
	})

	t.Run("zero-length range rejected", func(t *testing.T) {
		day := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
		b := &Booking{CheckInDate: day, CheckOutDate: day}
		assert.ErrorIs(t, b.ValidateDates(now), errors.ErrInvalidDateRange)
	})
}

func TestNetRevenue(t *testing.T) {
	b := &Booking{TotalPrice: 500, RefundedAmount: 200}
	assert.Equal(t, 300.0, b.NetRevenue())

	b.RefundedAmount = 500
	assert.Equal(t, 0.0, b.NetRevenue())
}

func TestIsFinal(t *testing.T) {
	assert.False(t, (&Booking{Status: BookingStatusPending}).IsFinal())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).IsFinal())
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).IsFinal())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).IsFinal())
	assert.True(t, (&Booking{Status: BookingStatusRefunded}).IsFinal())
}

func TestNewBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := NewBookingCode()
		require.Regexp(t, pattern, code)
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
