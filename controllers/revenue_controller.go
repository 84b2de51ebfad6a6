package controllers

import (
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// revenueRow is the per-hotel aggregation scanned from the ledger
type revenueRow struct {
	HotelID   uint
	HotelName string
	Bookings  int
	Gross     float64
	Refunded  float64
}

// GetRevenueSummary aggregates net revenue over a date range. Cancelled
// bookings never count; refunds subtract from the gross of the booking
// they belong to, so a fully refunded stay nets to zero.
func GetRevenueSummary(c *gin.Context) {
	from, err := time.Parse(dto.DateLayout, c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format(dto.DateLayout)))
	if err != nil {
		response.BadRequest(c, "from must use dd/MM/yyyy")
		return
	}
	to, err := time.Parse(dto.DateLayout, c.DefaultQuery("to", time.Now().Format(dto.DateLayout)))
	if err != nil {
		response.BadRequest(c, "to must use dd/MM/yyyy")
		return
	}
	// make the range inclusive of the whole "to" day
	to = to.AddDate(0, 0, 1)

	query := config.DB.Model(&models.Booking{}).
		Select("bookings.hotel_id AS hotel_id, hotels.name AS hotel_name, COUNT(*) AS bookings, SUM(bookings.total_price) AS gross, SUM(bookings.refunded_amount) AS refunded").
		Joins("JOIN hotels ON hotels.id = bookings.hotel_id").
		Where("bookings.status IN ?", []int{models.BookingStatusConfirmed, models.BookingStatusCompleted, models.BookingStatusRefunded}).
		Where("bookings.check_in_date >= ? AND bookings.check_in_date < ?", from, to).
		Group("bookings.hotel_id, hotels.name")

	// Admins only see their own hotels
	if role := c.GetInt("role"); role == constants.RoleAdmin {
		var admin models.User
		if err := config.DB.First(&admin, c.GetUint("userID")).Error; err != nil {
			response.Unauthorized(c)
			return
		}
		query = query.Where("bookings.hotel_id = ANY(?)", admin.HotelIDs)
	}

	var rows []revenueRow
	if err := query.Scan(&rows).Error; err != nil {
		response.ServerError(c)
		return
	}

	summary := dto.RevenueSummary{
		From:  from.Format(dto.DateLayout),
		To:    to.AddDate(0, 0, -1).Format(dto.DateLayout),
		Items: make([]dto.RevenueItem, 0, len(rows)),
	}
	for _, row := range rows {
		item := dto.RevenueItem{
			HotelID:      row.HotelID,
			HotelName:    row.HotelName,
			Bookings:     row.Bookings,
			GrossRevenue: row.Gross,
			Refunded:     row.Refunded,
			NetRevenue:   row.Gross - row.Refunded,
		}
		summary.Items = append(summary.Items, item)
		summary.GrossRevenue += item.GrossRevenue
		summary.Refunded += item.Refunded
		summary.NetRevenue += item.NetRevenue
	}

	response.Success(c, summary)
}
