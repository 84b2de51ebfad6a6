package services

import (
	"time"

	"stayhub/constants"
	"stayhub/models"

	"gorm.io/gorm"
)

// Overlaps is the single overlap rule for half-open [checkIn, checkOut)
// ranges: two ranges overlap iff each one starts before the other ends.
// A check-out on the same day as another check-in does not overlap, so
// back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsRoomAvailable reports whether no active booking on (hotel, room number)
// overlaps the candidate range. excludeBookingID skips one booking, used
// when re-validating the dates of an existing booking being edited.
//
// This is the API-layer half of the double-booking guard; the same scan
// runs again in Booking.BeforeCreate inside the insert transaction.
func IsRoomAvailable(db *gorm.DB, hotelID uint, roomNumber int, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	count, err := models.CountOverlapping(db, hotelID, roomNumber, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// AvailableRooms returns the rooms of a loaded hotel that pass both the
// catalog status check and the date-range availability check.
func AvailableRooms(db *gorm.DB, hotel *models.Hotel, checkIn, checkOut time.Time) ([]models.Room, error) {
	available := make([]models.Room, 0, len(hotel.Rooms))
	for i := range hotel.Rooms {
		room := hotel.Rooms[i]
		if room.Status != constants.RoomStatusAvailable {
			continue
		}
		free, err := IsRoomAvailable(db, hotel.ID, room.RoomNumber, checkIn, checkOut, 0)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, room)
		}
	}
	return available, nil
}
