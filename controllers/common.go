package controllers

import (
	"stayhub/config"
	"stayhub/services"
	"stayhub/services/notification"

	"github.com/olahol/melody"
)

// Publisher is the event sink handed to the services layer. Defaults to a
// no-op so handlers keep working in tests and tools without a websocket.
var Publisher notification.Publisher = notification.NopPublisher{}

// InitNotification wires the websocket broadcaster as the event sink.
func InitNotification(m *melody.Melody) {
	Publisher = notification.NewMelodyPublisher(m)
}

func bookingService() *services.BookingService {
	return services.NewBookingService(config.DB, Publisher)
}

func paymentService() *services.PaymentService {
	return services.NewPaymentService(config.DB, Publisher)
}

func refundService() *services.RefundService {
	return services.NewRefundService(config.DB, Publisher, services.StripeRefundProcessor{})
}

func catalogService() *services.CatalogService {
	return services.NewCatalogService(config.DB)
}
