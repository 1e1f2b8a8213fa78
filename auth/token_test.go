package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	id, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Minute)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Minute)
	other := NewTokenIssuer([]byte("other-secret"), time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
