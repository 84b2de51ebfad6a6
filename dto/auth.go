package dto

// LoginRequest is the credential payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginGoogleRequest carries the Google ID token
type LoginGoogleRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// VerifyRequest confirms an account with the emailed code
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResetPasswordRequest starts the password reset flow
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NewPasswordRequest completes the password reset flow
type NewPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// LoginResponse returns the signed token and the user profile
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}
