package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken("5f7e1c2a-0000-4000-8000-000000000001", "manager")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5f7e1c2a-0000-4000-8000-000000000001", claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("one", time.Hour).GenerateToken("u1", "owner")
	require.NoError(t, err)

	_, err = New("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("secret", -time.Minute)
	token, err := svc.GenerateToken("u1", "renter")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
