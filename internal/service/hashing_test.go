package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "secret123"

	hash, err := hashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, checkPasswordHash(password, hash))
	assert.False(t, checkPasswordHash("wrongpass1", hash))
	assert.False(t, checkPasswordHash(password, "not-a-bcrypt-hash"))
}
