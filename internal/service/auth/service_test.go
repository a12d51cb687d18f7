package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AccessTokens(t *testing.T) {
	svc := NewService("test-secret")

	t.Run("Round trip", func(t *testing.T) {
		token, err := svc.IssueAccessToken(42, time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)

		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.MemberID)
		assert.Equal(t, "42", claims.Subject)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := svc.IssueAccessToken(42, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Signed with another key", func(t *testing.T) {
		token, err := NewService("other-secret").IssueAccessToken(42, time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{MemberID: 42}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := NewService("").ValidateAccessToken("anything")

		assert.ErrorIs(t, err, ErrMissingKey)
	})
}
