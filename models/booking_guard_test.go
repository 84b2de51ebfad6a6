package models

import (
	"log"
	"testing"
	"time"

	"stayhub/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB, mock
}

func guardBooking() *Booking {
	checkIn := TruncateToDay(time.Now().UTC()).AddDate(0, 0, 7)
	return &Booking{
		HotelID:         1,
		RoomNumber:      101,
		CheckInDate:     checkIn,
		CheckOutDate:    checkIn.AddDate(0, 0, 2),
		Adults:          2,
		Status:          BookingStatusPending,
		PaymentIntentID: "pi_guard",
		TotalPrice:      400,
	}
}

// The insert hook takes the advisory lock and re-runs the overlap scan
// inside the transaction. A race lost after the API-layer availability
// check must surface here and roll the insert back.
func TestBookingCreateGuardBlocksLostRace(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := db.Create(guardBooking()).Error
	assert.ErrorIs(t, err, errors.ErrRoomNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateGuardCleanInsert(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	booking := guardBooking()
	require.NoError(t, db.Create(booking).Error)
	assert.Equal(t, uint(1), booking.ID)
	assert.Regexp(t, `^BK-\d{8}-[0-9A-F]{8}$`, booking.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The hook validates dates before touching the store, so a stale range
// never even takes the lock.
func TestBookingCreateGuardRejectsInvalidDates(t *testing.T) {
	db, mock := newMockDB(t)

	booking := guardBooking()
	booking.CheckInDate = TruncateToDay(time.Now().UTC()).AddDate(0, 0, -3)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.Create(booking).Error
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}
