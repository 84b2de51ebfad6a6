package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	// 2026-01-05 is a Monday
	assert.Equal(t, 2, Nights(date(2026, time.January, 5), date(2026, time.January, 7)))
	assert.Equal(t, 1, Nights(date(2026, time.January, 5), date(2026, time.January, 6)))

	// partial days round up
	checkIn := time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestTouchesWeekend(t *testing.T) {
	mon := date(2026, time.January, 5)
	wed := date(2026, time.January, 7)
	thu := date(2026, time.January, 8)
	fri := date(2026, time.January, 9)
	sat := date(2026, time.January, 10)
	sun := date(2026, time.January, 11)

	assert.False(t, TouchesWeekend(mon, wed))
	assert.True(t, TouchesWeekend(fri, sun))
	assert.True(t, TouchesWeekend(thu, sat))
	assert.False(t, TouchesWeekend(sun, date(2026, time.January, 13)))
}

func TestComputeTotalPrice(t *testing.T) {
	mon := date(2026, time.January, 5)
	wed := date(2026, time.January, 7)

	// 100 x 2 nights x 2 adults, no weekend
	assert.InDelta(t, 400.0, ComputeTotalPrice(100, mon, wed, 2, 0), 0.001)

	// Saturday check-out applies the 1.2 multiplier: 100 x 2 x 1.2 x 2
	thu := date(2026, time.January, 8)
	sat := date(2026, time.January, 10)
	assert.InDelta(t, 480.0, ComputeTotalPrice(100, thu, sat, 2, 0), 0.001)

	// children count half: 2 adults + 1 child = 2.5
	assert.InDelta(t, 500.0, ComputeTotalPrice(100, mon, wed, 2, 1), 0.001)

	// degenerate range prices to zero
	assert.Equal(t, 0.0, ComputeTotalPrice(100, wed, mon, 2, 0))
	assert.Equal(t, 0.0, ComputeTotalPrice(100, mon, mon, 2, 0))
}

func TestComputeTotalPriceDeterministic(t *testing.T) {
	fri := date(2026, time.January, 9)
	sun := date(2026, time.January, 11)

	first := ComputeTotalPrice(79.99, fri, sun, 3, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTotalPrice(79.99, fri, sun, 3, 2))
	}
}
