package services

import (
	"math"
	"time"
)

// weekendMultiplier applies when the stay touches a Friday or Saturday.
const weekendMultiplier = 1.2

// Nights counts billable nights between check-in and check-out, rounding
// partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func isWeekendDay(t time.Time) bool {
	return t.Weekday() == time.Friday || t.Weekday() == time.Saturday
}

// TouchesWeekend reports whether the weekend multiplier applies to a stay.
func TouchesWeekend(checkIn, checkOut time.Time) bool {
	return isWeekendDay(checkIn) || isWeekendDay(checkOut)
}

// ComputeTotalPrice is the deterministic pricing rule:
// unitPrice x nights x (adults + 0.5 x children), with the weekend
// multiplier when check-in or check-out falls on Friday or Saturday.
// A non-positive night count prices to 0; callers reject those dates
// before ever quoting.
func ComputeTotalPrice(unitPrice float64, checkIn, checkOut time.Time, adults, children int) float64 {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0
	}
	price := unitPrice * float64(nights)
	if TouchesWeekend(checkIn, checkOut) {
		price *= weekendMultiplier
	}
	return price * (float64(adults) + 0.5*float64(children))
}
