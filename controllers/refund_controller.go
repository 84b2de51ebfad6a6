package controllers

import (
	"errors"
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// RequestRefund records a guest's refund request on their own booking
func RequestRefund(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var input dto.RefundRequestPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := refundService().RequestRefund(c.GetUint("userID"), uint(bookingID), input.Amount, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFoundMessage(c, err.Error())
		case errors.Is(err, apperrors.ErrNotOwner):
			response.Forbidden(c)
		case errors.Is(err, apperrors.ErrRefundAlreadyRequested):
			response.Conflict(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// ResolveRefund is the admin decision on a pending refund request
func ResolveRefund(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var input dto.ResolveRefundRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := refundService().Resolve(uint(bookingID), input.Approve, input.Amount, input.AdminNote)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFoundMessage(c, err.Error())
		case errors.Is(err, apperrors.ErrNoRefundRequest):
			response.Conflict(c, err.Error())
		default:
			appErr := apperrors.GetAppError(err)
			if appErr != nil && appErr.Code == apperrors.ErrCodePaymentProvider {
				response.Error(c, 0, appErr.Message)
				return
			}
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidateBookingHistoryCache(booking.UserID)
	response.Success(c, toBookingResponse(*booking))
}

// ListRefundRequests shows the bookings with a pending refund request
func ListRefundRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.Booking{}).Preload("User").Preload("Hotel").
		Where("refund_status = ?", constants.RefundStatusRequested)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := query.Order("refund_requested_at ASC").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingsResponse = append(bookingsResponse, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, bookingsResponse, page, limit, int(total))
}
