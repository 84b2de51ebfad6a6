package jobs

import (
	"log"
	"time"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
	"stayhub/services/notification"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// stalePendingAge is how long an unpaid pending booking holds its room
// before the nightly sweep releases it.
const stalePendingAge = 24 * time.Hour

// InitCronJobs registers the nightly ledger sweeps and starts the scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	pub := notification.NewMelodyPublisher(m)

	_, err := c.AddFunc("0 0 * * *", func() {
		svc := services.NewBookingService(config.DB, pub)
		if err := completePastStays(svc); err != nil {
			log.Printf("complete past stays: %v", err)
		}
		if err := cancelStalePending(svc); err != nil {
			log.Printf("cancel stale pending bookings: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// completePastStays moves confirmed bookings whose check-out has passed to
// completed, which frees them for guest reviews.
func completePastStays(svc *services.BookingService) error {
	today := models.TruncateToDay(time.Now())

	var bookings []models.Booking
	if err := config.DB.
		Where("status = ? AND check_out_date <= ?", models.BookingStatusConfirmed, today).
		Find(&bookings).Error; err != nil {
		return err
	}

	for i := range bookings {
		if err := svc.Complete(&bookings[i]); err != nil {
			log.Printf("complete booking %s: %v", bookings[i].Code, err)
		}
	}
	return nil
}

// cancelStalePending releases rooms held by bookings that never got paid
func cancelStalePending(svc *services.BookingService) error {
	cutoff := time.Now().Add(-stalePendingAge)

	var bookings []models.Booking
	if err := config.DB.
		Where("status = ? AND created_at < ?", models.BookingStatusPending, cutoff).
		Find(&bookings).Error; err != nil {
		return err
	}

	for i := range bookings {
		if err := svc.Cancel(&bookings[i]); err != nil {
			log.Printf("cancel booking %s: %v", bookings[i].Code, err)
		}
	}
	return nil
}
