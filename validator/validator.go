package validator

import (
	"regexp"
	"time"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateUser checks a registration payload
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number is required", nil)
	}
	if !phoneRegex.MatchString(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}
	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}
	return nil
}

// ValidateBookingRequest checks a booking payload before the service layer
// sees it. Guest bookings need contact details; dates must parse and be a
// valid forward range.
func ValidateBookingRequest(req *dto.CreateBookingRequest, authenticated bool) error {
	if req.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel id is required", nil)
	}
	if req.PaymentIntentID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Payment intent id is required", nil)
	}

	checkIn, err := time.Parse(dto.DateLayout, req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-in date must use dd/MM/yyyy", err)
	}
	checkOut, err := time.Parse(dto.DateLayout, req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-out date must use dd/MM/yyyy", err)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "Check-out must be after check-in", nil)
	}

	if !authenticated {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
		}
		if req.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone is required", nil)
		}
		if !phoneRegex.MatchString(req.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid guest phone number", nil)
		}
		if req.GuestEmail != "" && !emailRegex.MatchString(req.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid guest email", nil)
		}
	}
	return nil
}

// ValidateReview checks a review payload
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "User id is required", nil)
	}
	if review.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel id is required", nil)
	}
	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Star rating must be between 1 and 5", nil)
	}
	return nil
}

// ValidateEmail checks an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidatePhone checks a phone number
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}
	return nil
}
