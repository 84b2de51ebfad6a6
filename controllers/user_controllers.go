package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
		IsVerified:  user.IsVerified,
		Avatar:      user.Avatar,
		DateOfBirth: user.DateOfBirth,
		HotelIDs:    user.HotelIDs,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// GetProfile returns the authenticated user's own profile
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	response.Success(c, toUserResponse(user))
}

// UpdateProfile mutates the authenticated user's own profile
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.DateOfBirth != "" {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != 0 {
		user.Gender = input.Gender
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// GetUsers lists accounts, super-admin only, paginated
func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	var users []models.User
	var total int64

	query := config.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	usersResponse := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		usersResponse = append(usersResponse, toUserResponse(user))
	}

	response.SuccessWithPagination(c, usersResponse, page, limit, int(total))
}

// ChangeUserStatus toggles an account, super-admin only
func ChangeUserStatus(c *gin.Context) {
	var input dto.UserStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Status != constants.UserStatusActive && input.Status != constants.UserStatusInactive {
		response.BadRequest(c, "Invalid status")
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.ID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	user.Status = input.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// AssignHotels grants an admin account its managed hotel list
func AssignHotels(c *gin.Context) {
	var input struct {
		UserID   uint    `json:"userId" binding:"required"`
		HotelIDs []int64 `json:"hotelIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.UserID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}
	if user.Role != constants.RoleAdmin {
		response.BadRequest(c, "Hotels can only be assigned to admin accounts")
		return
	}

	user.HotelIDs = input.HotelIDs
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}
