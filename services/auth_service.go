package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"stayhub/config"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/validator"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

// sendMail delivers an HTML mail through the configured SMTP relay.
// All mail in the system is best-effort; callers log failures and move on.
func sendMail(to, subject, body string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

func sendVerificationEmail(email, code string) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your one-time verification code is: <strong>%s</strong></p>
		<p>If you did not request this code you can safely ignore this email.</p>
		<p>Thanks,<br>The accounts team</p>
	`, email, code)
	return sendMail(email, "Your one-time verification code", body)
}

// SendBookingEmail confirms a created booking to the guest
func SendBookingEmail(email, bookingCode string, totalPrice float64, checkIn, checkOut string) error {
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your booking has been created. The details:</p>
		<ul>
			<li>Booking code: <strong>%s</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>%.2f</strong></li>
		</ul>
		<p>We will let you know as soon as the payment is confirmed.</p>
		<p>Thanks,<br>The support team</p>
	`, bookingCode, checkIn, checkOut, totalPrice)
	return sendMail(email, "Booking created", body)
}

// SendNews delivers a short informational mail
func SendNews(email, title, mess string) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>%s</p>
		<p>Thanks,<br>The accounts team</p>
	`, email, mess)
	return sendMail(email, title, body)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotFound
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotFound
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secretKeyToUse := secretKey
	if !isAccessToken {
		secretKeyToUse = refreshSecretKey
	}
	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// CreateUser registers a new account and mails the verification code
func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, apperrors.ErrUserAlreadyExists
	}
	if _, err := GetUserByPhoneNumber(input.PhoneNumber); err == nil {
		return models.User{}, apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		Name:          input.Name,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, code); err != nil {
		return user, err
	}
	return user, nil
}

// RegenerateVerificationCode issues and mails a fresh code
func RegenerateVerificationCode(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return apperrors.ErrUserNotFound
	}
	if result.Error != nil {
		return result.Error
	}

	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("save verification code: %v", err)
	}
	return sendVerificationEmail(user.Email, newCode)
}

// ResetPass starts the password reset flow with a fresh code
func ResetPass(user models.User) error {
	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("save verification code: %v", err)
	}
	return sendVerificationEmail(user.Email, newCode)
}

// NewPass commits the new password and confirms by mail
func NewPass(user models.User, newPassword string) error {
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %v", err)
	}

	user.Password = hashedPassword
	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("save password: %v", err)
	}

	if err := SendNews(user.Email, "Password changed", "Your password has been updated."); err != nil {
		return fmt.Errorf("send confirmation email: %v", err)
	}
	return nil
}

// CreateGoogleUser provisions an account from a verified Google identity
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	if _, err := GetUserByEmail(email); err == nil {
		return models.User{}, apperrors.ErrUserAlreadyExists
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   "",
		Avatar:     avatar,
		IsVerified: true,
		Role:       0,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return user, result.Error
	}
	return user, nil
}
