package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posdesk/backend/internal/infrastructure/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    "posdesk",
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID.String(),
		Username: "ada",
		Role:     "cashier",
	}
}

func TestValidateAccessToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "posdesk"})
	userID := uuid.New()

	claims, err := service.ValidateAccessToken(signToken(t, testSecret, validClaims(userID)))
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "cashier", claims.Role)

	parsed, err := claims.OperatorID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "posdesk"})

	_, err := service.ValidateAccessToken(signToken(t, "another-secret-another-secret-xx", validClaims(uuid.New())))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "posdesk"})

	claims := validClaims(uuid.New())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	claims.NotBefore = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))

	_, err := service.ValidateAccessToken(signToken(t, testSecret, claims))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessTokenMissingUserID(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "posdesk"})

	claims := validClaims(uuid.New())
	claims.UserID = ""

	_, err := service.ValidateAccessToken(signToken(t, testSecret, claims))
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestOperatorIDInvalid(t *testing.T) {
	claims := &Claims{UserID: "not-a-uuid"}
	_, err := claims.OperatorID()
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
