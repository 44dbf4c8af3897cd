package jwt_test

import (
	"testing"

	"volunteer-board/internal/global/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	token, err := jwt.CreateToken(jwt.Payload{SessionID: "abc"})
	require.NoError(t, err)

	claims, ok := jwt.ParseToken(token)
	require.True(t, ok)
	assert.Equal(t, "abc", claims.SessionID)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestToken_Tampered(t *testing.T) {
	token, err := jwt.CreateToken(jwt.Payload{SessionID: "abc"})
	require.NoError(t, err)

	_, ok := jwt.ParseToken(token + "x")
	assert.False(t, ok)
	_, ok = jwt.ParseToken("not-a-token")
	assert.False(t, ok)
}
