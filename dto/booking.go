package dto

import "time"

// DateLayout is the wire format for booking dates
const DateLayout = "02/01/2006"

// CreateBookingRequest starts the booking protocol. TotalPrice is the
// client's advisory quote; the server recomputes and rejects mismatches.
type CreateBookingRequest struct {
	HotelID         uint    `json:"hotelId" binding:"required"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	Adults          int     `json:"adults" binding:"required,gte=1"`
	Children        int     `json:"children" binding:"gte=0"`
	RoomType        int     `json:"roomType"`
	RoomNumber      *int    `json:"roomNumber"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentIntentID string  `json:"paymentIntentId" binding:"required"`
	GuestName       string  `json:"guestName,omitempty"`
	GuestEmail      string  `json:"guestEmail,omitempty"`
	GuestPhone      string  `json:"guestPhone,omitempty"`
}

// UpdateBookingStatusRequest drives the booking state machine
type UpdateBookingStatusRequest struct {
	Status int `json:"status" binding:"gte=0"`
}

// RefundRequestPayload is a guest's refund request
type RefundRequestPayload struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Reason string  `json:"reason"`
}

// ResolveRefundRequest is the admin decision on a pending refund
type ResolveRefundRequest struct {
	Approve   bool    `json:"approve"`
	Amount    float64 `json:"amount"`
	AdminNote string  `json:"adminNote"`
}

// PaymentEventRequest is the internal abstract payment event feed
type PaymentEventRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	Event           string `json:"event" binding:"required"`
}

// BookingResponse is the outward booking projection
type BookingResponse struct {
	ID              uint           `json:"id"`
	Code            string         `json:"code"`
	UserID          *uint          `json:"userId,omitempty"`
	HotelID         uint           `json:"hotelId"`
	HotelName       string         `json:"hotelName,omitempty"`
	RoomNumber      int            `json:"roomNumber"`
	RoomType        int            `json:"roomType"`
	CheckInDate     string         `json:"checkInDate"`
	CheckOutDate    string         `json:"checkOutDate"`
	Adults          int            `json:"adults"`
	Children        int            `json:"children"`
	Status          int            `json:"status"`
	PaymentStatus   int            `json:"paymentStatus"`
	PaymentIntentID string         `json:"paymentIntentId"`
	TotalPrice      float64        `json:"totalPrice"`
	RefundedAmount  float64        `json:"refundedAmount"`
	RefundStatus    int            `json:"refundStatus"`
	GuestName       string         `json:"guestName,omitempty"`
	GuestEmail      string         `json:"guestEmail,omitempty"`
	GuestPhone      string         `json:"guestPhone,omitempty"`
	User            *ActorResponse `json:"user,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// ActorResponse is the compact user block embedded in booking payloads
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// QuoteRequest asks for a server-side price for a stay
type QuoteRequest struct {
	HotelID      uint   `json:"hotelId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required,gte=1"`
	Children     int    `json:"children" binding:"gte=0"`
	RoomNumber   *int   `json:"roomNumber"`
}

// QuoteResponse is the computed price breakdown
type QuoteResponse struct {
	UnitPrice  float64 `json:"unitPrice"`
	Nights     int     `json:"nights"`
	Weekend    bool    `json:"weekend"`
	TotalPrice float64 `json:"totalPrice"`
}
