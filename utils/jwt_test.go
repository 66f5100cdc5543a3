package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("trainer-42", "coach@example.com", "trainer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "trainer-42", id)

	role, err := ExtractRoleFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "trainer", role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("abd"))
}
