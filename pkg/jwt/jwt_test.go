package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(accessExpiry time.Duration) *Manager {
	return NewManager("access-secret", "refresh-secret", accessExpiry, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("clinic-a", "Clinic A")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "clinic-a", claims.ClientID)
	assert.Equal(t, "Clinic A", claims.Name)
	assert.Equal(t, "kina", claims.Issuer)
	assert.Equal(t, "clinic-a", claims.Subject)
}

func TestAccessTokenExpired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateAccessToken("clinic-a", "Clinic A")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	other := NewManager("different-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("clinic-a", "Clinic A")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("clinic-b")
	require.NoError(t, err)

	clientID, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "clinic-b", clientID)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("clinic-b")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
