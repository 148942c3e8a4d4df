package auth_test

import (
	"testing"
	"time"

	"fithub_backend/internal/auth"
	"fithub_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.SetForTesting(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("user-1", "user@test.com", "trainer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "trainer", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseToken_TamperedSignature(t *testing.T) {
	token, err := auth.GenerateToken("user-1", "user@test.com", "user")
	require.NoError(t, err)

	_, err = auth.ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	claims := &auth.Claims{
		UserID: "user-1",
		Email:  "user@test.com",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := forged.SignedString([]byte("attacker-secret"))
	require.NoError(t, err)

	_, err = auth.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	claims := &auth.Claims{
		UserID: "user-1",
		Email:  "user@test.com",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.ParseToken(tokenStr)
	assert.Error(t, err)
}

// Токен с alg=none не должен проходить проверку подписи.
func TestParseToken_NoneAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
		UserID: "user-1",
		Role:   "admin",
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("super_password123")
	require.NoError(t, err)
	require.NotEqual(t, "super_password123", hash)

	assert.True(t, auth.CheckPasswordHash("super_password123", hash))
	assert.False(t, auth.CheckPasswordHash("wrong_password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, auth.ValidatePassword("12345"))
	assert.NoError(t, auth.ValidatePassword("123456"))
}
