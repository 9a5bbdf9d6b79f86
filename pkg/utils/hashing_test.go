package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareToken(t *testing.T) {

	t.Run("tokens are url safe", func(t *testing.T) {
		token, err := GenerateShareToken(8)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), token)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := GenerateShareToken(8)
			require.NoError(t, err)
			assert.False(t, seen[token])
			seen[token] = true
		}
	})

	t.Run("rejects too little entropy", func(t *testing.T) {
		_, err := GenerateShareToken(4)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, ComparePasswords(hash, "correct horse battery staple"))
	assert.Error(t, ComparePasswords(hash, "wrong password"))
}
