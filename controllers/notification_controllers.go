package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// GetUserNotifications lists the caller's persisted notifications
func GetUserNotifications(c *gin.Context) {
	userID := c.GetUint("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}

	query := config.DB.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, notifications, page, limit, int(total))
}

// DeleteNotification removes one of the caller's notifications
func DeleteNotification(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid notification id")
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", notificationID, c.GetUint("userID")).
		Delete(&models.Notification{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFoundMessage(c, "Notification not found")
		return
	}

	response.Success(c, nil)
}
