package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundtrip(t *testing.T) {
	m := NewManager("test-secret")

	signed, err := m.Sign("admin", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	signed, err := NewManager("secret-a").Sign("admin", RoleAdmin)
	require.NoError(t, err)

	claims, err := NewManager("secret-b").Parse(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
		{"unsigned alg none", "eyJhbGciOiJub25lIn0.eyJzdWIiOiJhZG1pbiIsInJvbGUiOiJhZG1pbiJ9."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Parse(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestTokensFromSameSecretInterchangeable(t *testing.T) {
	signed, err := NewManager("shared").Sign("admin", RoleAdmin)
	require.NoError(t, err)

	claims, err := NewManager("shared").Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}
