package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckSecret(t *testing.T) {
	secret, err := GenerateSecret(32)
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	hash := HashSecret(secret)
	assert.NotEqual(t, secret, hash)
	assert.NoError(t, CheckSecret(hash, secret))
	assert.Error(t, CheckSecret(hash, "not-the-secret"))
}

func TestGenerateFriendCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateFriendCode()
		require.NoError(t, err)
		require.Len(t, code, FriendCodeLength)
		for _, c := range code {
			assert.Contains(t, friendCodeAlphabet, string(c))
		}
		seen[code] = true
	}
	// 50 draws from a 36^6 space should not collide.
	assert.Greater(t, len(seen), 45)
}
