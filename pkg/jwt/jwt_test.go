package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.GenerateToken(1, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestValidateToken_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("another-secret", time.Hour)

	token, err := manager.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}
