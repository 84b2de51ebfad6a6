package dto

import "encoding/json"

// CreateHotelRequest creates a catalog entry
type CreateHotelRequest struct {
	Name             string              `json:"name" binding:"required"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description"`
	BasePrice        float64             `json:"basePrice" binding:"required,gt=0"`
	Avatar           string              `json:"avatar"`
	Img              json.RawMessage     `json:"img"`
	Amenities        json.RawMessage     `json:"amenities"`
	Address          string              `json:"address"`
	Province         string              `json:"province"`
	District         string              `json:"district"`
	Ward             string              `json:"ward"`
	Longitude        float64             `json:"longitude"`
	Latitude         float64             `json:"latitude"`
	TimeCheckIn      string              `json:"timeCheckIn"`
	TimeCheckOut     string              `json:"timeCheckOut"`
	Rooms            []CreateRoomRequest `json:"rooms"`
}

// UpdateHotelRequest mutates an existing entry; zero values leave a field
// untouched
type UpdateHotelRequest struct {
	Name             string          `json:"name"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	BasePrice        float64         `json:"basePrice"`
	Status           *int            `json:"status"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	Amenities        json.RawMessage `json:"amenities"`
	Address          string          `json:"address"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
}

// HotelResponse is the list/detail projection
type HotelResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description,omitempty"`
	BasePrice        float64         `json:"basePrice"`
	Status           int             `json:"status"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img,omitempty"`
	Amenities        json.RawMessage `json:"amenities,omitempty"`
	Address          string          `json:"address"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	AverageRating    float64         `json:"averageRating"`
	TotalReviews     int             `json:"totalReviews"`
	Rooms            []RoomResponse  `json:"rooms,omitempty"`
}

// HotelSummary is the compact projection used by search and chat results
type HotelSummary struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Avatar string  `json:"avatar"`
}

// ScoredHotel pairs a hotel with its fuzzy-search relevance score
type ScoredHotel struct {
	Hotel HotelResponse `json:"hotel"`
	Score int           `json:"score"`
}
