package models

import (
	"math"
	"testing"

	"stayhub/errors"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateRating(t *testing.T) {
	t.Run("no reviews", func(t *testing.T) {
		h := &Hotel{AverageRating: 4.5, TotalReviews: 9, Popularity: 3}
		h.RecalculateRating()
		assert.Equal(t, 0, h.TotalReviews)
		assert.Equal(t, 0.0, h.AverageRating)
		assert.Equal(t, 0.0, h.Popularity)
	})

	t.Run("average and popularity", func(t *testing.T) {
		h := &Hotel{Reviews: []Review{{Star: 5}, {Star: 4}, {Star: 3}}}
		h.RecalculateRating()
		assert.Equal(t, 3, h.TotalReviews)
		assert.InDelta(t, 4.0, h.AverageRating, 0.001)
		assert.InDelta(t, 4.0*math.Log(4), h.Popularity, 0.001)
	})
}

func TestValidateRoomNumbers(t *testing.T) {
	h := &Hotel{Rooms: []Room{{RoomNumber: 101}, {RoomNumber: 102}, {RoomNumber: 103}}}
	assert.NoError(t, h.ValidateRoomNumbers())

	h.Rooms = append(h.Rooms, Room{RoomNumber: 102})
	assert.ErrorIs(t, h.ValidateRoomNumbers(), errors.ErrDuplicateRoomNumber)
}

func TestFindRoom(t *testing.T) {
	h := &Hotel{Rooms: []Room{{RoomNumber: 101}, {RoomNumber: 102}}}

	room := h.FindRoom(102)
	assert.NotNil(t, room)
	assert.Equal(t, 102, room.RoomNumber)
	assert.Nil(t, h.FindRoom(999))
}

func TestUnitPrice(t *testing.T) {
	h := &Hotel{BasePrice: 80}

	assert.Equal(t, 80.0, h.UnitPrice(nil))
	assert.Equal(t, 80.0, h.UnitPrice(&Room{Price: 0}))
	assert.Equal(t, 120.0, h.UnitPrice(&Room{Price: 120}))
}

func TestValidateHotelStatus(t *testing.T) {
	assert.NoError(t, (&Hotel{Status: HotelStatusActive}).ValidateStatus())
	assert.NoError(t, (&Hotel{Status: HotelStatusArchived}).ValidateStatus())
	assert.ErrorIs(t, (&Hotel{Status: 7}).ValidateStatus(), errors.ErrInvalidInput)
	assert.ErrorIs(t, (&Hotel{Status: -1}).ValidateStatus(), errors.ErrInvalidInput)
}
