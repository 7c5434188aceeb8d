package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, err := mgr.Generate("8e4b7363-9f1f-4a9f-bb15-7d9a8e3f1c01")
	require.NoError(t, err)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "8e4b7363-9f1f-4a9f-bb15-7d9a8e3f1c01", claims.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("another", time.Hour)

	token, err := mgr.Generate("user-id")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	mgr := NewJWTManager("secret", -time.Minute)

	token, err := mgr.Generate("user-id")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}

func TestExpiry(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, err := mgr.Generate("user-id")
	require.NoError(t, err)

	exp, err := mgr.Expiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	_, err = ExtractTokenFromHeader(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer some-token")
	token, err := ExtractTokenFromHeader(req)
	require.NoError(t, err)
	assert.Equal(t, "some-token", token)

	req.Header.Set("Authorization", "Basic abc")
	_, err = ExtractTokenFromHeader(req)
	assert.Error(t, err)
}
