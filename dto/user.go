package dto

import "time"

// UserResponse is the outward-facing user profile
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role"`
	Status      int       `json:"status,omitempty"`
	IsVerified  bool      `json:"isVerified,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	HotelIDs    []int64   `json:"hotelIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateUserRequest registers a new account
type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      int    `json:"gender"`
}

// UserStatusRequest flips an account's status
type UserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
