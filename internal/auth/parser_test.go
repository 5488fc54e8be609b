package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plate-registry/internal/model"
)

func TestParseRoundTrip(t *testing.T) {
	parser := NewParser("secret")
	userID := uuid.New()

	token, err := parser.Sign(&Claims{
		UserID: userID,
		OrgID:  uuid.New(),
		Role:   model.UserRoleOperator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	claims, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.UserRoleOperator, claims.Role)
}

func TestParseRejects(t *testing.T) {
	parser := NewParser("secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewParser("other").Sign(&Claims{UserID: uuid.New()})
		require.NoError(t, err)
		_, err = parser.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := parser.Sign(&Claims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		require.NoError(t, err)
		_, err = parser.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		token, err := parser.Sign(&Claims{Role: model.UserRoleAdmin})
		require.NoError(t, err)
		_, err = parser.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parser.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
