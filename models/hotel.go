package models

import (
	"encoding/json"
	"math"
	"time"

	"stayhub/errors"
)

// Hotel status
const (
	HotelStatusActive   = 0
	HotelStatusHidden   = 1
	HotelStatusArchived = 2
)

// Hotel is the catalog aggregate root. It owns its Rooms exclusively:
// rooms have no independent lifecycle and every add/update/remove funnels
// through the catalog service so the room-number uniqueness invariant is
// checked before anything is persisted.
type Hotel struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"userId"`
	User             User            `json:"user" gorm:"foreignKey:UserID"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	BasePrice        float64         `json:"basePrice"`
	Status           int             `json:"status"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img" gorm:"type:json"`
	Amenities        json.RawMessage `json:"amenities" gorm:"type:json"`
	Address          string          `json:"address"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	Rooms            []Room          `json:"rooms" gorm:"foreignKey:HotelID"`
	Reviews          []Review        `json:"reviews" gorm:"foreignKey:HotelID"`
	AverageRating    float64         `json:"averageRating"`
	TotalReviews     int             `json:"totalReviews"`
	Popularity       float64         `json:"popularity"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RecalculateRating recomputes the derived review fields from the loaded
// review list. Popularity weighs the average by review volume:
// avg * ln(reviews + 1).
func (h *Hotel) RecalculateRating() {
	h.TotalReviews = len(h.Reviews)
	if h.TotalReviews == 0 {
		h.AverageRating = 0
		h.Popularity = 0
		return
	}
	sum := 0
	for _, r := range h.Reviews {
		sum += r.Star
	}
	h.AverageRating = float64(sum) / float64(h.TotalReviews)
	h.Popularity = h.AverageRating * math.Log(float64(h.TotalReviews)+1)
}

// ValidateRoomNumbers rejects duplicate room numbers inside the hotel.
func (h *Hotel) ValidateRoomNumbers() error {
	seen := make(map[int]bool, len(h.Rooms))
	for _, room := range h.Rooms {
		if seen[room.RoomNumber] {
			return errors.ErrDuplicateRoomNumber
		}
		seen[room.RoomNumber] = true
	}
	return nil
}

// FindRoom returns the room with the given number, nil if absent.
func (h *Hotel) FindRoom(number int) *Room {
	for i := range h.Rooms {
		if h.Rooms[i].RoomNumber == number {
			return &h.Rooms[i]
		}
	}
	return nil
}

// UnitPrice is the nightly price for a room: its own override when set,
// the hotel base price otherwise.
func (h *Hotel) UnitPrice(room *Room) float64 {
	if room != nil && room.Price > 0 {
		return room.Price
	}
	return h.BasePrice
}

func (h *Hotel) ValidateStatus() error {
	if h.Status < HotelStatusActive || h.Status > HotelStatusArchived {
		return errors.ErrInvalidInput
	}
	return nil
}
