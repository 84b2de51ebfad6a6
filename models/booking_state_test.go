package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStateTransitions(t *testing.T) {
	type action struct {
		name string
		do   func(s BookingState, b *Booking) error
	}
	confirm := action{"confirm", func(s BookingState, b *Booking) error { return s.Confirm(b) }}
	cancel := action{"cancel", func(s BookingState, b *Booking) error { return s.Cancel(b) }}
	complete := action{"complete", func(s BookingState, b *Booking) error { return s.Complete(b) }}
	refund := action{"refund", func(s BookingState, b *Booking) error { return s.Refund(b) }}

	tests := []struct {
		name       string
		from       int
		act        action
		wantErr    bool
		wantStatus int
	}{
		{"pending confirm", BookingStatusPending, confirm, false, BookingStatusConfirmed},
		{"pending cancel", BookingStatusPending, cancel, false, BookingStatusCancelled},
		{"pending complete rejected", BookingStatusPending, complete, true, BookingStatusPending},
		{"pending refund", BookingStatusPending, refund, false, BookingStatusRefunded},

		{"confirmed confirm rejected", BookingStatusConfirmed, confirm, true, BookingStatusConfirmed},
		{"confirmed cancel", BookingStatusConfirmed, cancel, false, BookingStatusCancelled},
		{"confirmed complete", BookingStatusConfirmed, complete, false, BookingStatusCompleted},
		{"confirmed refund", BookingStatusConfirmed, refund, false, BookingStatusRefunded},

		{"completed confirm rejected", BookingStatusCompleted, confirm, true, BookingStatusCompleted},
		{"completed cancel rejected", BookingStatusCompleted, cancel, true, BookingStatusCompleted},
		{"completed complete rejected", BookingStatusCompleted, complete, true, BookingStatusCompleted},
		{"completed refund", BookingStatusCompleted, refund, false, BookingStatusRefunded},

		{"cancelled confirm rejected", BookingStatusCancelled, confirm, true, BookingStatusCancelled},
		{"cancelled cancel rejected", BookingStatusCancelled, cancel, true, BookingStatusCancelled},
		{"cancelled complete rejected", BookingStatusCancelled, complete, true, BookingStatusCancelled},
		{"cancelled refund rejected", BookingStatusCancelled, refund, true, BookingStatusCancelled},

		{"refunded confirm rejected", BookingStatusRefunded, confirm, true, BookingStatusRefunded},
		{"refunded cancel rejected", BookingStatusRefunded, cancel, true, BookingStatusRefunded},
		{"refunded complete rejected", BookingStatusRefunded, complete, true, BookingStatusRefunded},
		{"refunded refund rejected", BookingStatusRefunded, refund, true, BookingStatusRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			err := tt.act.do(GetBookingState(b.Status), b)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, b.Status)
		})
	}
}

func TestGetBookingStateUnknownStatus(t *testing.T) {
	assert.IsType(t, &PendingState{}, GetBookingState(99))
}
