package validator

import (
	"testing"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *models.User {
	return &models.User{
		Email:       "guest@example.com",
		Password:    "secret123",
		PhoneNumber: "0912345678",
		Role:        0,
	}
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(validUser()))

	tests := []struct {
		name     string
		mutate   func(u *models.User)
		wantCode errors.ErrorCode
	}{
		{"missing email", func(u *models.User) { u.Email = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(u *models.User) { u.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"missing password", func(u *models.User) { u.Password = "" }, errors.ErrCodeRequiredField},
		{"short password", func(u *models.User) { u.Password = "abc" }, errors.ErrCodeValidation},
		{"missing phone", func(u *models.User) { u.PhoneNumber = "" }, errors.ErrCodeRequiredField},
		{"bad phone", func(u *models.User) { u.PhoneNumber = "12345" }, errors.ErrCodeInvalidPhone},
		{"invalid role", func(u *models.User) { u.Role = 9 }, errors.ErrCodeInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := ValidateUser(u)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func validBookingRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		HotelID:         1,
		CheckInDate:     "12/03/2026",
		CheckOutDate:    "14/03/2026",
		Adults:          2,
		PaymentIntentID: "pi_abc",
		GuestName:       "Jordan Lee",
		GuestPhone:      "0912345678",
	}
}

func TestValidateBookingRequest(t *testing.T) {
	t.Run("valid authenticated request", func(t *testing.T) {
		req := validBookingRequest()
		req.GuestName = ""
		req.GuestPhone = ""
		assert.NoError(t, ValidateBookingRequest(req, true))
	})

	t.Run("valid guest request", func(t *testing.T) {
		assert.NoError(t, ValidateBookingRequest(validBookingRequest(), false))
	})

	tests := []struct {
		name     string
		mutate   func(r *dto.CreateBookingRequest)
		auth     bool
		wantCode errors.ErrorCode
	}{
		{"missing hotel", func(r *dto.CreateBookingRequest) { r.HotelID = 0 }, true, errors.ErrCodeRequiredField},
		{"missing payment intent", func(r *dto.CreateBookingRequest) { r.PaymentIntentID = "" }, true, errors.ErrCodeRequiredField},
		{"unparseable check-in", func(r *dto.CreateBookingRequest) { r.CheckInDate = "2026-03-12" }, true, errors.ErrCodeInvalidFormat},
		{"unparseable check-out", func(r *dto.CreateBookingRequest) { r.CheckOutDate = "tomorrow" }, true, errors.ErrCodeInvalidFormat},
		{"inverted range", func(r *dto.CreateBookingRequest) { r.CheckOutDate = "10/03/2026" }, true, errors.ErrCodeValidation},
		{"same-day range", func(r *dto.CreateBookingRequest) { r.CheckOutDate = r.CheckInDate }, true, errors.ErrCodeValidation},
		{"guest without name", func(r *dto.CreateBookingRequest) { r.GuestName = "" }, false, errors.ErrCodeRequiredField},
		{"guest without phone", func(r *dto.CreateBookingRequest) { r.GuestPhone = "" }, false, errors.ErrCodeRequiredField},
		{"guest with bad phone", func(r *dto.CreateBookingRequest) { r.GuestPhone = "123" }, false, errors.ErrCodeInvalidPhone},
		{"guest with bad email", func(r *dto.CreateBookingRequest) { r.GuestEmail = "nope" }, false, errors.ErrCodeInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(req)
			err := ValidateBookingRequest(req, tt.auth)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(&models.Review{UserID: 1, HotelID: 2, Star: 4}))
	assert.Error(t, ValidateReview(&models.Review{HotelID: 2, Star: 4}))
	assert.Error(t, ValidateReview(&models.Review{UserID: 1, Star: 4}))
	assert.Error(t, ValidateReview(&models.Review{UserID: 1, HotelID: 2, Star: 0}))
	assert.Error(t, ValidateReview(&models.Review{UserID: 1, HotelID: 2, Star: 6}))
}
