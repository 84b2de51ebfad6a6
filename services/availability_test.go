package services

import (
	"log"
	"testing"
	"time"

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

func TestOverlaps(t *testing.T) {
	jan := func(d int) time.Time { return date(2026, time.January, d) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical ranges", 5, 8, 5, 8, true},
		{"partial overlap", 5, 8, 7, 10, true},
		{"containment", 5, 10, 6, 7, true},
		{"disjoint", 5, 8, 9, 12, false},
		{"back to back, checkout equals next checkin", 5, 8, 8, 11, false},
		{"back to back reversed", 8, 11, 5, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(jan(tt.aStart), jan(tt.aEnd), jan(tt.bStart), jan(tt.bEnd))
			assert.Equal(t, tt.want, got)
			// the predicate is symmetric
			assert.Equal(t, got, Overlaps(jan(tt.bStart), jan(tt.bEnd), jan(tt.aStart), jan(tt.aEnd)))
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	checkIn := date(2026, time.March, 10)
	checkOut := date(2026, time.March, 12)

	t.Run("no overlapping booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		free, err := IsRoomAvailable(db, 1, 101, checkIn, checkOut, 0)
		require.NoError(t, err)
		assert.True(t, free)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlapping booking blocks the room", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		free, err := IsRoomAvailable(db, 1, 101, checkIn, checkOut, 0)
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("query error propagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnError(gorm.ErrInvalidDB)

		_, err := IsRoomAvailable(db, 1, 101, checkIn, checkOut, 0)
		assert.Error(t, err)
	})
}
