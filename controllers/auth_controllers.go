package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const verificationCodeTTL = 5 * time.Minute

func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.GetUserByEmail(input.Email)
	if err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        toUserResponse(user),
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, toUserResponse(user))
}

func VerifyCode(c *gin.Context) {
	var input dto.VerifyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "No account with this email")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Invalid verification code")
		return
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		response.BadRequest(c, "Verification code expired, please request a new one")
		return
	}

	user.Code = ""
	user.IsVerified = true
	config.DB.Save(&user)

	response.Success(c, nil)
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "No account with this email")
		return
	}

	if err := services.RegenerateVerificationCode(user.ID); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ForgetPassword(c *gin.Context) {
	var input dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "No account with this email")
		return
	}

	if err := services.ResetPass(user); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ResetPassword(c *gin.Context) {
	var input dto.NewPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "No account with this email")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Invalid verification code")
		return
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		response.BadRequest(c, "Verification code expired, please request a new one")
		return
	}

	user.Code = ""
	if err := services.NewPass(user, input.NewPassword); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// AuthGoogle signs a user in with a Google ID token, provisioning the
// account on first login.
func AuthGoogle(c *gin.Context) {
	var input dto.LoginGoogleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(name, email, picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        toUserResponse(user),
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}
