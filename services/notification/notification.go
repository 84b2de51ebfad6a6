package notification

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"
)

// Event names emitted by the booking core. Consumers (websocket clients,
// the admin dashboard) key off these.
const (
	EventBookingCreated   = "booking_created"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
	EventBookingCompleted = "booking_completed"
	EventBookingRefunded  = "booking_refunded"
	EventPaymentFailed    = "payment_failed"
	EventRefundRequested  = "refund_requested"
	EventRefundResolved   = "refund_resolved"
)

// Publisher is the event-sink capability handed to the booking and payment
// services. Delivery is best-effort: callers log a failed publish and move
// on, they never roll back the owning transaction.
type Publisher interface {
	Publish(event string, payload interface{}) error
}

// Envelope is the wire shape broadcast to websocket clients
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// MelodyPublisher broadcasts events to all connected websocket sessions
type MelodyPublisher struct {
	m *melody.Melody
}

func NewMelodyPublisher(m *melody.Melody) *MelodyPublisher {
	return &MelodyPublisher{m: m}
}

func (p *MelodyPublisher) Publish(event string, payload interface{}) error {
	if p.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	b, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}
	return p.m.Broadcast(b)
}

// NopPublisher drops every event; used by tests and offline jobs.
type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) error { return nil }
