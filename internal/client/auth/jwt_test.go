package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return tok
}

func TestInspect_ReadsSubjectAndExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	}})

	s, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Subject)
	assert.True(t, s.ExpiresAt.Equal(exp))
	assert.False(t, s.Expired(time.Now()))
}

func TestInspect_FallsBackToUserID(t *testing.T) {
	t.Parallel()

	s, err := Inspect(signToken(t, Claims{UserID: "u1"}))
	require.NoError(t, err)
	assert.Equal(t, "u1", s.Subject)
	assert.True(t, s.ExpiresAt.IsZero())
	assert.False(t, s.Expired(time.Now()), "tokens without exp never expire locally")
}

func TestInspect_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Inspect("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	tok := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})

	_, err := Validate(tok, time.Now())
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	tok := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}})

	s, err := Validate(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Subject)
}
