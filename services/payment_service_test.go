package services

import (
	"testing"

	"stayhub/constants"
	"stayhub/models"
	"stayhub/services/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		Status:        models.BookingStatusPending,
		PaymentStatus: constants.PaymentStatusPending,
		TotalPrice:    500,
	}
}

func TestApplyPaymentTransition(t *testing.T) {
	t.Run("succeeded confirms a pending booking", func(t *testing.T) {
		b := pendingBooking()
		changed, event, err := ApplyPaymentTransition(b, constants.PaymentEventSucceeded)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, notification.EventBookingConfirmed, event)
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
		assert.Equal(t, constants.PaymentStatusSucceeded, b.PaymentStatus)
	})

	t.Run("succeeded redelivery is a no-op", func(t *testing.T) {
		b := pendingBooking()
		_, _, err := ApplyPaymentTransition(b, constants.PaymentEventSucceeded)
		require.NoError(t, err)

		changed, event, err := ApplyPaymentTransition(b, constants.PaymentEventSucceeded)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, event)
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	})

	t.Run("failed keeps the booking pending for retry", func(t *testing.T) {
		b := pendingBooking()
		changed, event, err := ApplyPaymentTransition(b, constants.PaymentEventFailed)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, notification.EventPaymentFailed, event)
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.Equal(t, constants.PaymentStatusFailed, b.PaymentStatus)
	})

	t.Run("failed redelivery is a no-op", func(t *testing.T) {
		b := pendingBooking()
		_, _, err := ApplyPaymentTransition(b, constants.PaymentEventFailed)
		require.NoError(t, err)

		changed, _, err := ApplyPaymentTransition(b, constants.PaymentEventFailed)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("succeeded after a failed attempt still confirms", func(t *testing.T) {
		b := pendingBooking()
		_, _, err := ApplyPaymentTransition(b, constants.PaymentEventFailed)
		require.NoError(t, err)

		changed, _, err := ApplyPaymentTransition(b, constants.PaymentEventSucceeded)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
		assert.Equal(t, constants.PaymentStatusSucceeded, b.PaymentStatus)
	})

	t.Run("refund completed refunds a confirmed booking in full", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStatusConfirmed

		changed, event, err := ApplyPaymentTransition(b, constants.PaymentEventRefundCompleted)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, notification.EventBookingRefunded, event)
		assert.Equal(t, models.BookingStatusRefunded, b.Status)
		assert.Equal(t, constants.PaymentStatusRefunded, b.PaymentStatus)
		assert.Equal(t, constants.RefundStatusCompleted, b.RefundStatus)
		assert.Equal(t, b.TotalPrice, b.RefundedAmount)
	})

	t.Run("refund completed ignores a completed stay", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStatusCompleted

		changed, _, err := ApplyPaymentTransition(b, constants.PaymentEventRefundCompleted)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, models.BookingStatusCompleted, b.Status)
	})

	t.Run("unknown event errors", func(t *testing.T) {
		b := pendingBooking()
		_, _, err := ApplyPaymentTransition(b, "charge.captured")
		assert.Error(t, err)
	})
}

func TestApplyPaymentEventUnknownIntent(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	svc := NewPaymentService(db, notification.NopPublisher{})
	err := svc.ApplyPaymentEvent("pi_missing", constants.PaymentEventSucceeded)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentEventEmptyIntent(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewPaymentService(db, notification.NopPublisher{})
	assert.NoError(t, svc.ApplyPaymentEvent("", constants.PaymentEventSucceeded))
}
