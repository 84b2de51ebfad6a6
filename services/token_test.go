package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserIDFromToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserId: 42, Role: 2}, 60, true)
		require.NoError(t, err)

		userID, role, err := GetUserIDFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
		assert.Equal(t, 2, role)
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserId: 42, Role: 2}, 60, true)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

		_, _, err = GetUserIDFromToken(tampered)
		assert.Error(t, err)
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		good, err := GenerateToken(UserInfo{UserId: 42, Role: 0}, 60, true)
		require.NoError(t, err)
		other, err := GenerateToken(UserInfo{UserId: 7, Role: 1}, 60, true)
		require.NoError(t, err)

		goodParts := strings.Split(good, ".")
		otherParts := strings.Split(other, ".")
		spliced := goodParts[0] + "." + otherParts[1] + "." + goodParts[2]

		_, _, err = GetUserIDFromToken(spliced)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserId: 42, Role: 2}, -5, true)
		require.NoError(t, err)

		_, _, err = GetUserIDFromToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, _, err := GetUserIDFromToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestGetIDFromToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 9, Role: 0}, 60, true)
	require.NoError(t, err)

	userID, err := GetIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), userID)
}
