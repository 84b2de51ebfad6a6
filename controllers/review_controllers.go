package controllers

import (
	"log"
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

func toReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		HotelID:   review.HotelID,
		UserName:  review.User.Name,
		Star:      review.Star,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// CreateReview posts a review. Only guests who completed a stay at the
// hotel can review it; the hotel's derived rating fields update afterwards.
func CreateReview(c *gin.Context) {
	var input dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := c.GetUint("userID")

	var stayed int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND hotel_id = ? AND status = ?", userID, input.HotelID, models.BookingStatusCompleted).
		Count(&stayed).Error; err != nil {
		response.ServerError(c)
		return
	}
	if stayed == 0 {
		response.Forbidden(c)
		return
	}

	review := models.Review{
		UserID:  userID,
		HotelID: input.HotelID,
		Star:    input.Star,
		Comment: input.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := catalogService().RecalculateHotelRating(input.HotelID); err != nil {
		log.Printf("recalculate rating for hotel %d: %v", input.HotelID, err)
	}
	invalidateHotelsCache()

	config.DB.Preload("User").First(&review, review.ID)
	response.Created(c, toReviewResponse(review))
}

// GetHotelReviews lists a hotel's reviews, newest first
func GetHotelReviews(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.Review{}).Preload("User").Where("hotel_id = ?", hotelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewsResponse := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewsResponse = append(reviewsResponse, toReviewResponse(review))
	}

	response.SuccessWithPagination(c, reviewsResponse, page, limit, int(total))
}
