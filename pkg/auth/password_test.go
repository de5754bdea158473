package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/rentaldeploy/pkg/auth"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := auth.BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))

	again, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "bcrypt salts every hash")
}

func TestGeneratePassword(t *testing.T) {
	a, err := auth.GeneratePassword(16)
	require.NoError(t, err)
	b, err := auth.GeneratePassword(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.False(t, strings.ContainsAny(a, "0O1lI"))
}

func TestGeneratePasswordRejectsShort(t *testing.T) {
	_, err := auth.GeneratePassword(4)
	assert.ErrorIs(t, err, auth.ErrPasswordLength)
}
