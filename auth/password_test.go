package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPassword("secret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// Never errors or panics, just a mismatch
	assert.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret", ""))
}
