package services

import (
	"errors"
	"fmt"

	"stayhub/constants"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"gorm.io/gorm"
)

// PaymentService reconciles booking state with the asynchronous payment
// lifecycle events delivered by the provider webhook.
type PaymentService struct {
	db  *gorm.DB
	pub notification.Publisher
	log logger.Logger
}

func NewPaymentService(db *gorm.DB, pub notification.Publisher) *PaymentService {
	return &PaymentService{
		db:  db,
		pub: pub,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// ApplyPaymentTransition mutates the booking for one provider event and
// reports whether anything changed, plus the notification event to emit.
// Providers redeliver events, so re-applying one to a booking that has
// already transitioned must change nothing.
func ApplyPaymentTransition(b *models.Booking, event string) (bool, string, error) {
	switch event {
	case constants.PaymentEventSucceeded:
		if b.Status != models.BookingStatusPending {
			return false, "", nil
		}
		b.Status = models.BookingStatusConfirmed
		b.PaymentStatus = constants.PaymentStatusSucceeded
		return true, notification.EventBookingConfirmed, nil

	case constants.PaymentEventFailed:
		// The booking stays pending so the guest can retry payment.
		if b.Status != models.BookingStatusPending || b.PaymentStatus == constants.PaymentStatusFailed {
			return false, "", nil
		}
		b.PaymentStatus = constants.PaymentStatusFailed
		return true, notification.EventPaymentFailed, nil

	case constants.PaymentEventRefundCompleted:
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			return false, "", nil
		}
		b.Status = models.BookingStatusRefunded
		b.PaymentStatus = constants.PaymentStatusRefunded
		b.RefundedAmount = b.TotalPrice
		b.RefundStatus = constants.RefundStatusCompleted
		return true, notification.EventBookingRefunded, nil

	default:
		return false, "", fmt.Errorf("unknown payment event: %s", event)
	}
}

// ApplyPaymentEvent looks up the booking by payment intent and applies the
// transition inside one transaction. Events for unknown intents are logged
// and dropped: the provider redelivers events and may reference resources
// that never were bookings.
func (s *PaymentService) ApplyPaymentEvent(paymentIntentID, event string) error {
	if paymentIntentID == "" {
		s.log.Info("payment event %s without an intent id, dropped", event)
		return nil
	}

	var booking models.Booking
	var emit string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_intent_id = ?", paymentIntentID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Info("payment event %s for unknown intent %s, dropped", event, paymentIntentID)
				return nil
			}
			return err
		}

		changed, eventName, err := ApplyPaymentTransition(&booking, event)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		emit = eventName
		return tx.Save(&booking).Error
	})
	if err != nil {
		return err
	}

	if emit != "" && s.pub != nil {
		if pubErr := s.pub.Publish(emit, &booking); pubErr != nil {
			s.log.Error("publish %s for intent %s: %v", emit, paymentIntentID, pubErr)
		}
	}
	return nil
}
