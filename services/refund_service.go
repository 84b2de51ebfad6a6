package services

import (
	"errors"
	"math"
	"os"
	"time"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/refund"
	"gorm.io/gorm"
)

// RefundProcessor issues the provider-side refund. Behind an interface so
// tests and offline tooling run without touching the provider.
type RefundProcessor interface {
	ProcessRefund(paymentIntentID string, amount float64) error
}

// StripeRefundProcessor refunds against the original payment intent
type StripeRefundProcessor struct{}

func (StripeRefundProcessor) ProcessRefund(paymentIntentID string, amount float64) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	_, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(int64(math.Round(amount * 100))),
	})
	return err
}

// RefundService handles the guest request / admin resolution workflow
type RefundService struct {
	db        *gorm.DB
	pub       notification.Publisher
	processor RefundProcessor
	log       logger.Logger
}

func NewRefundService(db *gorm.DB, pub notification.Publisher, processor RefundProcessor) *RefundService {
	return &RefundService{
		db:        db,
		pub:       pub,
		processor: processor,
		log:       logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// RequestRefund records a guest refund request on a booking they own
func (s *RefundService) RequestRefund(userID, bookingID uint, amount float64, reason string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if booking.UserID == nil || *booking.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	if booking.RefundStatus == constants.RefundStatusRequested || booking.RefundStatus == constants.RefundStatusPending {
		return nil, apperrors.ErrRefundAlreadyRequested
	}
	if amount <= 0 || amount > booking.NetRevenue() {
		return nil, apperrors.ErrRefundAmountInvalid
	}

	now := time.Now()
	booking.RefundRequest = models.RefundRequest{
		Amount:      amount,
		Reason:      reason,
		RequestedAt: &now,
	}
	booking.RefundStatus = constants.RefundStatusRequested

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	s.publish(notification.EventRefundRequested, &booking)
	return &booking, nil
}

// ApplyRefund books a processed refund amount onto the booking: the
// refunded total accumulates, refund status becomes partial or completed,
// and a full refund flips the booking itself to refunded.
func ApplyRefund(b *models.Booking, amount float64) error {
	if amount <= 0 || amount > b.TotalPrice-b.RefundedAmount {
		return apperrors.ErrRefundAmountInvalid
	}
	b.RefundedAmount += amount
	if b.RefundedAmount >= b.TotalPrice {
		b.RefundStatus = constants.RefundStatusCompleted
		if err := models.GetBookingState(b.Status).Refund(b); err != nil {
			return err
		}
		b.PaymentStatus = constants.PaymentStatusRefunded
	} else {
		b.RefundStatus = constants.RefundStatusPartial
	}
	return nil
}

// Resolve is the admin decision on a pending refund request. Approval
// processes the provider-side refund first; a provider failure leaves the
// request pending so the admin can retry.
func (s *RefundService) Resolve(bookingID uint, approve bool, amount float64, adminNote string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if booking.RefundStatus != constants.RefundStatusRequested {
		return nil, apperrors.ErrNoRefundRequest
	}

	if !approve {
		booking.RefundStatus = constants.RefundStatusNone
		booking.RefundRequest = models.RefundRequest{AdminNote: adminNote}
		if err := s.db.Save(&booking).Error; err != nil {
			return nil, err
		}
		s.publish(notification.EventRefundResolved, &booking)
		s.notifyGuest(&booking, "Your refund request was rejected")
		return &booking, nil
	}

	if amount <= 0 {
		amount = booking.RefundRequest.Amount
	}

	if err := s.processor.ProcessRefund(booking.PaymentIntentID, amount); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodePaymentProvider, "refund failed at the payment provider", err)
	}

	if err := ApplyRefund(&booking, amount); err != nil {
		return nil, err
	}
	booking.RefundRequest.AdminNote = adminNote

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	s.publish(notification.EventRefundResolved, &booking)
	s.notifyGuest(&booking, "Your refund has been processed")
	return &booking, nil
}

func (s *RefundService) publish(event string, booking *models.Booking) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(event, booking); err != nil {
		s.log.Error("publish %s for booking %s: %v", event, booking.Code, err)
	}
}

// notifyGuest persists a notification row for the booking owner,
// best-effort.
func (s *RefundService) notifyGuest(booking *models.Booking, message string) {
	if booking.UserID == nil {
		return
	}
	n := models.Notification{
		UserID:  *booking.UserID,
		Event:   notification.EventRefundResolved,
		Message: message,
	}
	if err := s.db.Create(&n).Error; err != nil {
		s.log.Error("persist guest notification for booking %s: %v", booking.Code, err)
	}
}
