package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models"
)

func testService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		VerificationExp: 15 * time.Minute,
		TokenIssuer:     "pcell-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService()
	user := &models.User{ID: 42, Email: "asha.rao@college.edu", EnrolmentNo: "2022BCS0421", IsAdmin: true}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "asha.rao@college.edu", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "x@college.edu"}
	access, _, _, _, err := testService().GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
	})
	access, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "x@college.edu"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestEmailVerificationTokenRoundTrip(t *testing.T) {
	svc := testService()

	token, err := svc.GenerateEmailVerificationToken("asha.rao@college.edu")
	require.NoError(t, err)

	email, err := svc.ValidateEmailVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "asha.rao@college.edu", email)
}

func TestEmailVerificationTokenIsNotAnAccessToken(t *testing.T) {
	svc := testService()

	token, err := svc.GenerateEmailVerificationToken("asha.rao@college.edu")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
