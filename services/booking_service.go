package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"stayhub/builders"
	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"gorm.io/gorm"
)

// priceTolerance absorbs float noise between a client quote and the
// server-side recomputation; anything beyond it is rejected.
const priceTolerance = 0.01

// BookingService orchestrates the booking protocol: price computation,
// availability check, ledger insert and the best-effort notifications.
type BookingService struct {
	db  *gorm.DB
	pub notification.Publisher
	log logger.Logger
}

func NewBookingService(db *gorm.DB, pub notification.Publisher) *BookingService {
	return &BookingService{
		db:  db,
		pub: pub,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// CreateBookingInput carries the validated request fields
type CreateBookingInput struct {
	UserID          *uint
	HotelID         uint
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	RoomType        int
	RoomNumber      *int
	TotalPrice      float64 // client quote, advisory only
	PaymentIntentID string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
}

// CreateBooking runs the full protocol. The availability check here and
// the pre-commit scan in Booking.BeforeCreate are the two halves of the
// double-booking guard; a race lost at the second one still surfaces as
// ErrRoomNotAvailable.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.Adults < 1 || in.Children < 0 {
		return nil, apperrors.ErrInvalidInput
	}

	probe := models.Booking{CheckInDate: in.CheckIn, CheckOutDate: in.CheckOut}
	if err := probe.ValidateDates(time.Now()); err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := s.db.Preload("Rooms").First(&hotel, in.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHotelNotFound
		}
		return nil, err
	}

	room, err := selectRoom(&hotel, in.RoomType, in.RoomNumber)
	if err != nil {
		return nil, err
	}

	free, err := IsRoomAvailable(s.db, hotel.ID, room.RoomNumber, in.CheckIn, in.CheckOut, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, apperrors.ErrRoomNotAvailable
	}

	total := ComputeTotalPrice(hotel.UnitPrice(room), in.CheckIn, in.CheckOut, in.Adults, in.Children)
	if in.TotalPrice > 0 && math.Abs(in.TotalPrice-total) > priceTolerance {
		return nil, apperrors.ErrPriceMismatch
	}

	booking := builders.NewBookingBuilder().
		WithUser(in.UserID).
		WithHotel(hotel.ID).
		WithRoom(room.RoomNumber, room.Type).
		WithDates(in.CheckIn, in.CheckOut).
		WithOccupancy(in.Adults, in.Children).
		WithPaymentIntent(in.PaymentIntentID).
		WithTotalPrice(total).
		WithGuestInfo(in.GuestName, in.GuestPhone, in.GuestEmail).
		Build()

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(booking).Error
	}); err != nil {
		return nil, err
	}

	s.publish(notification.EventBookingCreated, booking)
	s.notifyHotelAdmin(&hotel, booking)

	return booking, nil
}

// selectRoom resolves the requested room, or picks the first room of the
// requested type whose catalog status is available when no number was given.
func selectRoom(hotel *models.Hotel, roomType int, roomNumber *int) (*models.Room, error) {
	if roomNumber != nil {
		room := hotel.FindRoom(*roomNumber)
		if room == nil {
			return nil, apperrors.ErrRoomNotFound
		}
		if room.Status != constants.RoomStatusAvailable {
			return nil, apperrors.ErrRoomNotAvailable
		}
		return room, nil
	}
	if room := FirstAvailableRoomOfType(hotel, roomType); room != nil {
		return room, nil
	}
	return nil, apperrors.ErrNoRoomAvailable
}

// GetByID loads a booking with its relations
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Hotel").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Cancel moves a booking to cancelled through the state machine
func (s *BookingService) Cancel(booking *models.Booking) error {
	if err := models.GetBookingState(booking.Status).Cancel(booking); err != nil {
		return err
	}
	if err := s.db.Save(booking).Error; err != nil {
		return err
	}
	s.publish(notification.EventBookingCancelled, booking)
	return nil
}

// Complete moves a booking to completed through the state machine
func (s *BookingService) Complete(booking *models.Booking) error {
	if err := models.GetBookingState(booking.Status).Complete(booking); err != nil {
		return err
	}
	if err := s.db.Save(booking).Error; err != nil {
		return err
	}
	s.publish(notification.EventBookingCompleted, booking)
	return nil
}

func (s *BookingService) publish(event string, booking *models.Booking) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(event, booking); err != nil {
		s.log.Error("publish %s for booking %s: %v", event, booking.Code, err)
	}
}

// notifyHotelAdmin persists a notification row for the hotel owner.
// Best-effort: a failure is logged, never propagated to the caller.
func (s *BookingService) notifyHotelAdmin(hotel *models.Hotel, booking *models.Booking) {
	n := models.Notification{
		UserID:  hotel.UserID,
		Event:   notification.EventBookingCreated,
		Message: fmt.Sprintf("New booking %s: room %d, %s to %s", booking.Code, booking.RoomNumber, booking.CheckInDate.Format("02/01/2006"), booking.CheckOutDate.Format("02/01/2006")),
	}
	if err := s.db.Create(&n).Error; err != nil {
		s.log.Error("persist admin notification for booking %s: %v", booking.Code, err)
	}
}
