package dto

import "encoding/json"

// CreateRoomRequest adds a room to a hotel
type CreateRoomRequest struct {
	RoomNumber  int             `json:"roomNumber" binding:"required,gt=0"`
	Type        int             `json:"type"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// UpdateRoomRequest mutates a room; zero values leave a field untouched
type UpdateRoomRequest struct {
	RoomNumber  int             `json:"roomNumber"`
	Type        int             `json:"type"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// RoomStatusRequest flips the catalog availability switch
type RoomStatusRequest struct {
	Status int `json:"status"`
}

// RoomResponse is the outward room projection
type RoomResponse struct {
	ID          uint            `json:"id"`
	HotelID     uint            `json:"hotelId"`
	RoomNumber  int             `json:"roomNumber"`
	Type        int             `json:"type"`
	Status      int             `json:"status"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description,omitempty"`
	Avatar      string          `json:"avatar,omitempty"`
	Img         json.RawMessage `json:"img,omitempty"`
}
