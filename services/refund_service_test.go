package services

import (
	"errors"
	"testing"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/services/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRefund(t *testing.T) {
	t.Run("partial refund", func(t *testing.T) {
		b := &models.Booking{
			Status:       models.BookingStatusCompleted,
			TotalPrice:   500,
			RefundStatus: constants.RefundStatusRequested,
		}
		require.NoError(t, ApplyRefund(b, 200))
		assert.Equal(t, 200.0, b.RefundedAmount)
		assert.Equal(t, constants.RefundStatusPartial, b.RefundStatus)
		assert.Equal(t, models.BookingStatusCompleted, b.Status)
		assert.Equal(t, 300.0, b.NetRevenue())
	})

	t.Run("second refund exhausting the balance completes", func(t *testing.T) {
		b := &models.Booking{
			Status:     models.BookingStatusCompleted,
			TotalPrice: 500,
		}
		require.NoError(t, ApplyRefund(b, 200))
		require.NoError(t, ApplyRefund(b, 300))

		assert.Equal(t, 500.0, b.RefundedAmount)
		assert.Equal(t, constants.RefundStatusCompleted, b.RefundStatus)
		assert.Equal(t, models.BookingStatusRefunded, b.Status)
		assert.Equal(t, constants.PaymentStatusRefunded, b.PaymentStatus)
		assert.Equal(t, 0.0, b.NetRevenue())
	})

	t.Run("full refund in one step", func(t *testing.T) {
		b := &models.Booking{
			Status:     models.BookingStatusConfirmed,
			TotalPrice: 250,
		}
		require.NoError(t, ApplyRefund(b, 250))
		assert.Equal(t, models.BookingStatusRefunded, b.Status)
		assert.Equal(t, constants.RefundStatusCompleted, b.RefundStatus)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusConfirmed, TotalPrice: 500}
		assert.ErrorIs(t, ApplyRefund(b, 0), apperrors.ErrRefundAmountInvalid)
		assert.ErrorIs(t, ApplyRefund(b, -10), apperrors.ErrRefundAmountInvalid)
		assert.Equal(t, 0.0, b.RefundedAmount)
	})

	t.Run("amount above the remaining balance rejected", func(t *testing.T) {
		b := &models.Booking{
			Status:         models.BookingStatusConfirmed,
			TotalPrice:     500,
			RefundedAmount: 400,
		}
		assert.ErrorIs(t, ApplyRefund(b, 200), apperrors.ErrRefundAmountInvalid)
		assert.Equal(t, 400.0, b.RefundedAmount)
	})
}

type failingProcessor struct{ err error }

func (p failingProcessor) ProcessRefund(string, float64) error { return p.err }

func TestResolveProviderFailureLeavesRequestPending(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "status", "payment_status", "payment_intent_id", "total_price", "refunded_amount", "refund_status", "refund_amount"}).
		AddRow(7, models.BookingStatusCompleted, constants.PaymentStatusSucceeded, "pi_123", 500.0, 0.0, constants.RefundStatusRequested, 200.0)
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).WillReturnRows(rows)

	providerErr := errors.New("card network declined the refund")
	svc := NewRefundService(db, notification.NopPublisher{}, failingProcessor{err: providerErr})

	_, err := svc.Resolve(7, true, 200, "")
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodePaymentProvider, appErr.Code)
	assert.ErrorIs(t, err, providerErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithoutPendingRequest(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "status", "refund_status"}).
		AddRow(7, models.BookingStatusCompleted, constants.RefundStatusNone)
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).WillReturnRows(rows)

	svc := NewRefundService(db, notification.NopPublisher{}, failingProcessor{})
	_, err := svc.Resolve(7, true, 100, "")
	assert.ErrorIs(t, err, apperrors.ErrNoRefundRequest)
}
