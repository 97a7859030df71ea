package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hashed, err := HashPassword("Password123")
	require.NoError(t, err)

	assert.NotEqual(t, "Password123", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
	assert.True(t, CheckPasswordHash("Password123", hashed))
}

func TestCheckPasswordHashWrongPassword(t *testing.T) {
	hashed, err := HashPassword("Password123")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("password123", hashed))
	assert.False(t, CheckPasswordHash("", hashed))
}

func TestCheckPasswordHashRejectsPlaintextStored(t *testing.T) {
	// Nilai tersimpan yang bukan hash bcrypt tidak boleh lolos
	assert.False(t, CheckPasswordHash("Password123", "Password123"))
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := HashPassword("Password123")
	require.NoError(t, err)
	second, err := HashPassword("Password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
