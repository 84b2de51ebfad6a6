package services

import (
	"testing"
	"time"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/services/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(days int) time.Time {
	return models.TruncateToDay(time.Now().UTC()).AddDate(0, 0, days)
}

// weekday range two nights out, shifted off Friday and Saturday so the
// expected price needs no weekend multiplier.
func weekdayStay() (time.Time, time.Time) {
	checkIn := futureDate(7)
	for isWeekendDay(checkIn) || isWeekendDay(checkIn.AddDate(0, 0, 2)) {
		checkIn = checkIn.AddDate(0, 0, 1)
	}
	return checkIn, checkIn.AddDate(0, 0, 2)
}

func expectHotelWithRoom(mock sqlmock.Sqlmock, hotelID uint, basePrice float64, roomNumber int, roomStatus int) {
	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "base_price"}).
			AddRow(hotelID, 9, basePrice))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_number", "type", "status", "price"}).
			AddRow(1, hotelID, roomNumber, constants.RoomTypeStandard, roomStatus, 0.0))
}

func TestCreateBookingPriceMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	checkIn, checkOut := weekdayStay()

	expectHotelWithRoom(mock, 1, 100, 101, constants.RoomStatusAvailable)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	roomNumber := 101
	svc := NewBookingService(db, notification.NopPublisher{})
	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:         1,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          2,
		RoomNumber:      &roomNumber,
		TotalPrice:      250, // server computes 100 x 2 nights x 2 adults = 400
		PaymentIntentID: "pi_mismatch",
	})

	assert.ErrorIs(t, err, apperrors.ErrPriceMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRoomUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	checkIn, checkOut := weekdayStay()

	expectHotelWithRoom(mock, 1, 100, 101, constants.RoomStatusAvailable)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	roomNumber := 101
	svc := NewBookingService(db, notification.NopPublisher{})
	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:         1,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          1,
		RoomNumber:      &roomNumber,
		PaymentIntentID: "pi_busy",
	})

	assert.ErrorIs(t, err, apperrors.ErrRoomNotAvailable)
}

func TestCreateBookingHotelNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	checkIn, checkOut := weekdayStay()

	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := NewBookingService(db, notification.NopPublisher{})
	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:         42,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          1,
		PaymentIntentID: "pi_nohotel",
	})

	assert.ErrorIs(t, err, apperrors.ErrHotelNotFound)
}

func TestCreateBookingInvalidDates(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewBookingService(db, notification.NopPublisher{})

	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:         1,
		CheckIn:         futureDate(-2),
		CheckOut:        futureDate(1),
		Adults:          1,
		PaymentIntentID: "pi_past",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	_, err = svc.CreateBooking(CreateBookingInput{
		HotelID:         1,
		CheckIn:         futureDate(3),
		CheckOut:        futureDate(3),
		Adults:          1,
		PaymentIntentID: "pi_zero",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestSelectRoom(t *testing.T) {
	hotel := &models.Hotel{
		Rooms: []models.Room{
			{RoomNumber: 101, Type: constants.RoomTypeStandard, Status: constants.RoomStatusMaintenance},
			{RoomNumber: 102, Type: constants.RoomTypeStandard, Status: constants.RoomStatusAvailable},
			{RoomNumber: 201, Type: constants.RoomTypeSuite, Status: constants.RoomStatusAvailable},
		},
	}

	t.Run("explicit room number", func(t *testing.T) {
		n := 201
		room, err := selectRoom(hotel, constants.RoomTypeSuite, &n)
		require.NoError(t, err)
		assert.Equal(t, 201, room.RoomNumber)
	})

	t.Run("unknown room number", func(t *testing.T) {
		n := 999
		_, err := selectRoom(hotel, constants.RoomTypeStandard, &n)
		assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	})

	t.Run("room out of service", func(t *testing.T) {
		n := 101
		_, err := selectRoom(hotel, constants.RoomTypeStandard, &n)
		assert.ErrorIs(t, err, apperrors.ErrRoomNotAvailable)
	})

	t.Run("first available of requested type", func(t *testing.T) {
		room, err := selectRoom(hotel, constants.RoomTypeStandard, nil)
		require.NoError(t, err)
		assert.Equal(t, 102, room.RoomNumber)
	})

	t.Run("no room of the requested type", func(t *testing.T) {
		_, err := selectRoom(hotel, constants.RoomTypePremium, nil)
		assert.ErrorIs(t, err, apperrors.ErrNoRoomAvailable)
	})
}
