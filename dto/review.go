package dto

import "time"

// CreateReviewRequest posts a review on a hotel
type CreateReviewRequest struct {
	HotelID uint   `json:"hotelId" binding:"required"`
	Star    int    `json:"star" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ReviewResponse is the outward review projection
type ReviewResponse struct {
	ID        uint      `json:"id"`
	HotelID   uint      `json:"hotelId"`
	UserName  string    `json:"userName"`
	Star      int       `json:"star"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
