package models

import (
	"encoding/json"
	"fmt"
	"time"

	"stayhub/constants"
)

// Room is an entry in a hotel's owned room list. (hotel_id, room_number)
// is unique; the composite index backs the catalog-service validator so a
// racing duplicate insert still fails at the store.
type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	HotelID     uint            `json:"hotelId" gorm:"uniqueIndex:idx_hotel_room_number"`
	RoomNumber  int             `json:"roomNumber" gorm:"uniqueIndex:idx_hotel_room_number"`
	Type        int             `json:"type"`
	Status      int             `json:"status" gorm:"default:0"`
	Price       float64         `json:"price"` // nightly override, 0 inherits the hotel base price
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			r.Status, constants.RoomStatusAvailable, constants.RoomStatusMaintenance)
	}
	return nil
}

func (r *Room) ValidateType() error {
	if r.Type < constants.RoomTypeStandard || r.Type > constants.RoomTypePremium {
		return fmt.Errorf("invalid type: %d, must be between %d and %d",
			r.Type, constants.RoomTypeStandard, constants.RoomTypePremium)
	}
	return nil
}
