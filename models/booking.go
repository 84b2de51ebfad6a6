package models

import (
	"fmt"
	"strings"
	"time"

	"stayhub/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
	BookingStatusRefunded  = 4
)

// RefundRequest is the guest-initiated refund sub-record kept on the booking
type RefundRequest struct {
	Amount      float64    `json:"amount"`
	Reason      string     `json:"reason"`
	RequestedAt *time.Time `json:"requestedAt,omitempty"`
	AdminNote   string     `json:"adminNote,omitempty"`
}

// Booking is an independent ledger entry. The room is referenced by
// (hotel_id, room_number) instead of a foreign key into the rooms table so
// availability scans never have to load the hotel aggregate.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Code            string        `json:"code" gorm:"uniqueIndex;size:32"`
	UserID          *uint         `json:"userId"`
	User            *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	HotelID         uint          `json:"hotelId" gorm:"index:idx_booking_room"`
	Hotel           Hotel         `json:"hotel" gorm:"foreignKey:HotelID"`
	RoomNumber      int           `json:"roomNumber" gorm:"index:idx_booking_room"`
	RoomType        int           `json:"roomType"`
	CheckInDate     time.Time     `json:"checkInDate" gorm:"type:date"`
	CheckOutDate    time.Time     `json:"checkOutDate" gorm:"type:date"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children"`
	Status          int           `json:"status" gorm:"index"`
	PaymentStatus   int           `json:"paymentStatus"`
	PaymentIntentID string        `json:"paymentIntentId" gorm:"uniqueIndex;size:64"`
	TotalPrice      float64       `json:"totalPrice"`
	RefundedAmount  float64       `json:"refundedAmount"`
	RefundStatus    int           `json:"refundStatus"`
	RefundRequest   RefundRequest `json:"refundRequest" gorm:"embedded;embeddedPrefix:refund_"`
	GuestName       string        `json:"guestName,omitempty"`
	GuestEmail      string        `json:"guestEmail,omitempty"`
	GuestPhone      string        `json:"guestPhone,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ActiveBookingStatuses are the statuses that block a room for a date range.
var ActiveBookingStatuses = []int{BookingStatusPending, BookingStatusConfirmed}

// NewBookingCode generates a globally unique human-readable booking code.
func NewBookingCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BK-%s-%s", time.Now().Format("20060102"), suffix)
}

// TruncateToDay drops the time-of-day part, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateDates enforces checkOut > checkIn and checkIn >= today. The
// comparison is date-only so a check-in later today is still accepted.
func (b *Booking) ValidateDates(now time.Time) error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return errors.ErrInvalidDateRange
	}
	if TruncateToDay(b.CheckInDate).Before(TruncateToDay(now)) {
		return errors.ErrInvalidDateRange
	}
	return nil
}

// NetRevenue is what the booking actually earned: total minus refunds.
func (b *Booking) NetRevenue() float64 {
	return b.TotalPrice - b.RefundedAmount
}

// IsFinal reports whether the booking is immutable except for refund
// bookkeeping fields.
func (b *Booking) IsFinal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusRefunded
}

// CountOverlapping is the single canonical overlap query: bookings on the
// same (hotel, room number) in an active status whose half-open
// [check_in, check_out) interval intersects the candidate range. Both the
// API-level availability check and the pre-commit guard go through here.
func CountOverlapping(tx *gorm.DB, hotelID uint, roomNumber int, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	q := tx.Model(&Booking{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Where("status IN ?", ActiveBookingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// BeforeCreate is the persistence-side half of the double-booking guard.
// The availability check at the API layer and this one race when two
// requests arrive together, so the scan runs again inside the insert
// transaction under an advisory lock keyed on (hotel, room number). The
// lock lives in the shared store and therefore holds across API instances;
// it is released when the transaction ends.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Code == "" {
		b.Code = NewBookingCode()
	}
	if err := b.ValidateDates(time.Now()); err != nil {
		return err
	}
	lockKey := fmt.Sprintf("booking:%d:%d", b.HotelID, b.RoomNumber)
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
		return err
	}
	count, err := CountOverlapping(tx, b.HotelID, b.RoomNumber, b.CheckInDate, b.CheckOutDate, 0)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.ErrRoomNotAvailable
	}
	return nil
}
