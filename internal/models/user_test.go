package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Public_StripsCredentials(t *testing.T) {
	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$secret",
		Nickname:     "管理员",
		Avatar:       DefaultAvatar,
		Role:         RoleAdmin,
		IsActive:     true,
		LastLoginAt:  &now,
	}

	pub := u.Public()
	raw, err := json.Marshal(pub)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), "admin@example.com")
	assert.Equal(t, u.Username, pub.Username)
	assert.Equal(t, u.Role, pub.Role)
}
