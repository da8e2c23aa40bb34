package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@b.com")
	require.NoError(t, err)

	userID, email, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "a@b.com", email)
}

func TestParseAccessToken_Tampered(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@b.com")
	require.NoError(t, err)

	_, _, err = ParseAccessToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	a, err := GenerateRefreshToken()
	require.NoError(t, err)
	b, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
