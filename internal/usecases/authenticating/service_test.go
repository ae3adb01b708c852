package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
)

func TestNewService_SemSegredo(t *testing.T) {
	assert.Nil(t, NewService(config.Auth{Secret: ""}))
	assert.Nil(t, NewService(config.Auth{Secret: "   "}))
	assert.NotNil(t, NewService(config.Auth{Secret: "segredo"}))
}

func TestGenerateAndValidateToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service := &Service{secret: []byte("segredo"), now: func() time.Time { return now }}

	token, err := service.GenerateToken("operador", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operador", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestValidateToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service := &Service{secret: []byte("segredo"), now: func() time.Time { return now }}
	other := &Service{secret: []byte("outro"), now: func() time.Time { return now }}
	past := &Service{secret: []byte("segredo"), now: func() time.Time { return now.Add(-48 * time.Hour) }}

	signedByOther, err := other.GenerateToken("operador", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	expired, err := past.GenerateToken("operador", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{name: "Segredo diferente", token: signedByOther, expectedErr: ErrInvalidToken},
		{name: "Token expirado", token: expired, expectedErr: ErrExpiredToken},
		{name: "Algoritmo none", token: noneToken, expectedErr: ErrInvalidToken},
		{name: "Token malformado", token: "abc.def", expectedErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestGenerateToken_SemSubject(t *testing.T) {
	service := &Service{secret: []byte("segredo"), now: time.Now}

	_, err := service.GenerateToken(" ", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
