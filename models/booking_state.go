package models

import "errors"

// BookingState defines the legal transitions for each booking status
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
	Refund(b *Booking) error
}

// PendingState awaiting payment confirmation
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking) error {
	b.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	b.Status = BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(b *Booking) error {
	return errors.New("cannot complete a pending booking")
}

func (s *PendingState) Refund(b *Booking) error {
	b.Status = BookingStatusRefunded
	return nil
}

// ConfirmedState payment succeeded, stay upcoming or in progress
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(b *Booking) error {
	b.Status = BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Refund(b *Booking) error {
	b.Status = BookingStatusRefunded
	return nil
}

// CompletedState stay finished; immutable except refund bookkeeping
type CompletedState struct{}

func (s *CompletedState) Confirm(b *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(b *Booking) error {
	return errors.New("cannot cancel a completed booking")
}

func (s *CompletedState) Complete(b *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Refund(b *Booking) error {
	b.Status = BookingStatusRefunded
	return nil
}

// CancelledState terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(b *Booking) error {
	return errors.New("cannot confirm a cancelled booking")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(b *Booking) error {
	return errors.New("cannot complete a cancelled booking")
}

func (s *CancelledState) Refund(b *Booking) error {
	return errors.New("cannot refund a cancelled booking")
}

// RefundedState terminal
type RefundedState struct{}

func (s *RefundedState) Confirm(b *Booking) error {
	return errors.New("cannot confirm a refunded booking")
}

func (s *RefundedState) Cancel(b *Booking) error {
	return errors.New("cannot cancel a refunded booking")
}

func (s *RefundedState) Complete(b *Booking) error {
	return errors.New("cannot complete a refunded booking")
}

func (s *RefundedState) Refund(b *Booking) error {
	return errors.New("booking already refunded")
}

// GetBookingState returns the state handler for a status value
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	case BookingStatusRefunded:
		return &RefundedState{}
	default:
		return &PendingState{}
	}
}
