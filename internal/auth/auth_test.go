// server/internal/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller-api-server/internal/models"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, CheckPasswordHash("secreto123", hash))
	assert.False(t, CheckPasswordHash("otro", hash))
}

func TestTokenRoundtrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	profile := &models.UserProfile{
		ProfileID: "USR-ABC12345",
		Username:  "jefe",
		Role:      models.RoleShopManager,
	}

	token, err := m.Generate(profile)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "USR-ABC12345", claims.ProfileID)
	assert.Equal(t, "jefe", claims.Username)
	assert.Equal(t, string(models.RoleShopManager), claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Generate(&models.UserProfile{ProfileID: "USR-1", Username: "x"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	m.expiration = -time.Minute

	token, err := m.Generate(&models.UserProfile{ProfileID: "USR-1", Username: "x"})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}
