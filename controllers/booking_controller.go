package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func bookingHistoryCacheKey(userID uint) string {
	return "bookings:history:" + strconv.FormatUint(uint64(userID), 10)
}

func toBookingResponse(b models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:              b.ID,
		Code:            b.Code,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		HotelName:       b.Hotel.Name,
		RoomNumber:      b.RoomNumber,
		RoomType:        b.RoomType,
		CheckInDate:     b.CheckInDate.Format(dto.DateLayout),
		CheckOutDate:    b.CheckOutDate.Format(dto.DateLayout),
		Adults:          b.Adults,
		Children:        b.Children,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentIntentID: b.PaymentIntentID,
		TotalPrice:      b.TotalPrice,
		RefundedAmount:  b.RefundedAmount,
		RefundStatus:    b.RefundStatus,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.User != nil {
		resp.User = &dto.ActorResponse{
			Name:        b.User.Name,
			Email:       b.User.Email,
			PhoneNumber: b.User.PhoneNumber,
		}
	}
	return resp
}

func invalidateBookingHistoryCache(userID *uint) {
	if config.RedisClient == nil || userID == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingHistoryCacheKey(*userID)); err != nil {
		log.Printf("invalidate booking history cache: %v", err)
	}
}

// CreateBooking runs the booking protocol for an authenticated or guest
// request. Losing the double-booking race surfaces as a 409.
func CreateBooking(c *gin.Context) {
	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	authenticated := c.GetUint("userID") != 0
	if err := validator.ValidateBookingRequest(&input, authenticated); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(dto.DateLayout, input.CheckInDate)
	if err != nil {
		response.BadRequest(c, "checkInDate must use dd/MM/yyyy")
		return
	}
	checkOut, err := time.Parse(dto.DateLayout, input.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "checkOutDate must use dd/MM/yyyy")
		return
	}

	var userID *uint
	if id := c.GetUint("userID"); id != 0 {
		userID = &id
	}

	booking, err := bookingService().CreateBooking(services.CreateBookingInput{
		UserID:          userID,
		HotelID:         input.HotelID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          input.Adults,
		Children:        input.Children,
		RoomType:        input.RoomType,
		RoomNumber:      input.RoomNumber,
		TotalPrice:      input.TotalPrice,
		PaymentIntentID: input.PaymentIntentID,
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHotelNotFound), errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFoundMessage(c, err.Error())
		case errors.Is(err, apperrors.ErrRoomNotAvailable), errors.Is(err, apperrors.ErrNoRoomAvailable):
			response.Conflict(c, err.Error())
		case errors.Is(err, apperrors.ErrPriceMismatch),
			errors.Is(err, apperrors.ErrInvalidDateRange),
			errors.Is(err, apperrors.ErrInvalidInput):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c)
		}
		return
	}

	if booking.GuestEmail != "" {
		if err := services.SendBookingEmail(booking.GuestEmail, booking.Code, booking.TotalPrice,
			booking.CheckInDate.Format(dto.DateLayout), booking.CheckOutDate.Format(dto.DateLayout)); err != nil {
			log.Printf("booking email for %s: %v", booking.Code, err)
		}
	}

	invalidateBookingHistoryCache(booking.UserID)
	response.Created(c, toBookingResponse(*booking))
}

// GetBookings lists bookings scoped by role: guests see their own, admins
// see their hotels, super-admins see everything.
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	userID := c.GetUint("userID")
	role := c.GetInt("role")

	query := config.DB.Model(&models.Booking{}).Preload("User").Preload("Hotel")

	switch role {
	case constants.RoleSuperAdmin:
	case constants.RoleAdmin, constants.RoleReceptionist:
		var admin models.User
		if err := config.DB.First(&admin, userID).Error; err != nil {
			response.Unauthorized(c)
			return
		}
		query = query.Where("hotel_id = ANY(?)", admin.HotelIDs)
	default:
		query = query.Where("user_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if hotelID := c.Query("hotelId"); hotelID != "" {
		query = query.Where("hotel_id = ?", hotelID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingsResponse = append(bookingsResponse, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, bookingsResponse, page, limit, int(total))
}

// canAccessBooking checks the caller's right to read a booking
func canAccessBooking(booking *models.Booking, userID uint, role int) bool {
	switch role {
	case constants.RoleSuperAdmin:
		return true
	case constants.RoleAdmin, constants.RoleReceptionist:
		var admin models.User
		if err := config.DB.First(&admin, userID).Error; err != nil {
			return false
		}
		for _, id := range admin.HotelIDs {
			if uint(id) == booking.HotelID {
				return true
			}
		}
		return false
	default:
		return booking.UserID != nil && *booking.UserID == userID
	}
}

// GetBookingDetail returns one booking, owner or managing admin only
func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bookingService().GetByID(uint(bookingID))
	if err != nil {
		response.NotFoundMessage(c, "Booking not found")
		return
	}

	if !canAccessBooking(booking, c.GetUint("userID"), c.GetInt("role")) {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// GetBookingHistory lists the caller's past stays, cached per user
func GetBookingHistory(c *gin.Context) {
	userID := c.GetUint("userID")
	cacheKey := bookingHistoryCacheKey(userID)

	var bookingsResponse []dto.BookingResponse
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &bookingsResponse); err == nil && len(bookingsResponse) > 0 {
			response.SuccessWithTotal(c, bookingsResponse, len(bookingsResponse))
			return
		}
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Hotel").
		Where("user_id = ? AND status IN ?", userID,
			[]int{models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusRefunded}).
		Order("check_out_date DESC").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse = make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingsResponse = append(bookingsResponse, toBookingResponse(b))
	}

	if config.RedisClient != nil && len(bookingsResponse) > 0 {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, bookingsResponse, 10*time.Minute); err != nil {
			log.Printf("cache booking history: %v", err)
		}
	}

	response.SuccessWithTotal(c, bookingsResponse, len(bookingsResponse))
}

// ChangeBookingStatus drives the state machine from the API. Only cancel
// and complete are reachable here; confirmation comes from the payment
// reconciliation path, never from a client.
func ChangeBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var input dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc := bookingService()
	booking, err := svc.GetByID(uint(bookingID))
	if err != nil {
		response.NotFoundMessage(c, "Booking not found")
		return
	}

	userID := c.GetUint("userID")
	role := c.GetInt("role")
	if !canAccessBooking(booking, userID, role) {
		response.Forbidden(c)
		return
	}

	switch input.Status {
	case models.BookingStatusCancelled:
		err = svc.Cancel(booking)
	case models.BookingStatusCompleted:
		if role == constants.RoleGuest {
			response.Forbidden(c)
			return
		}
		err = svc.Complete(booking)
	default:
		response.BadRequest(c, "Only cancel and complete are allowed here")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invalidateBookingHistoryCache(booking.UserID)
	response.Success(c, toBookingResponse(*booking))
}

// GetQuote prices a stay server-side without creating anything
func GetQuote(c *gin.Context) {
	var input dto.QuoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(dto.DateLayout, input.CheckInDate)
	if err != nil {
		response.BadRequest(c, "checkInDate must use dd/MM/yyyy")
		return
	}
	checkOut, err := time.Parse(dto.DateLayout, input.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "checkOutDate must use dd/MM/yyyy")
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "checkOutDate must be after checkInDate")
		return
	}

	hotel, err := catalogService().GetHotel(input.HotelID)
	if err != nil {
		response.NotFoundMessage(c, "Hotel not found")
		return
	}

	var room *models.Room
	if input.RoomNumber != nil {
		if room = hotel.FindRoom(*input.RoomNumber); room == nil {
			response.NotFoundMessage(c, "Room not found")
			return
		}
	}

	unitPrice := hotel.UnitPrice(room)
	total := services.ComputeTotalPrice(unitPrice, checkIn, checkOut, input.Adults, input.Children)

	response.Success(c, dto.QuoteResponse{
		UnitPrice:  unitPrice,
		Nights:     services.Nights(checkIn, checkOut),
		Weekend:    services.TouchesWeekend(checkIn, checkOut),
		TotalPrice: total,
	})
}
