package builders

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a builder with the initial ledger state:
// a fresh booking always starts pending with a pending payment.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			Status:        models.BookingStatusPending,
			PaymentStatus: constants.PaymentStatusPending,
			RefundStatus:  constants.RefundStatusNone,
		},
	}
}

// WithUser sets the owning user, nil for guest checkouts
func (b *BookingBuilder) WithUser(userID *uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithHotel sets the hotel reference
func (b *BookingBuilder) WithHotel(hotelID uint) *BookingBuilder {
	b.booking.HotelID = hotelID
	return b
}

// WithRoom sets the denormalized room number and type
func (b *BookingBuilder) WithRoom(roomNumber, roomType int) *BookingBuilder {
	b.booking.RoomNumber = roomNumber
	b.booking.RoomType = roomType
	return b
}

// WithDates sets the stay interval
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithOccupancy sets the guest counts
func (b *BookingBuilder) WithOccupancy(adults, children int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithPaymentIntent sets the provider payment intent id
func (b *BookingBuilder) WithPaymentIntent(paymentIntentID string) *BookingBuilder {
	b.booking.PaymentIntentID = paymentIntentID
	return b
}

// WithTotalPrice sets the computed total
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// WithGuestInfo sets contact details for guest checkouts
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// Build returns the assembled booking
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
