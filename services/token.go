package services

import (
	"stayhub/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken verifies the token against the access-token secret
// and extracts the user id and role. Expired or tampered tokens are
// rejected here, before any handler sees the request.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}

// GetIDFromToken extracts only the user id from a token
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
