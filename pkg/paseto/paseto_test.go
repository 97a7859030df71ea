package paseto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        "budi@gmail.com",
		Role:         "employee",
		IsFirstLogin: true,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Contains(t, token, "v2.local.")

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "budi@gmail.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
	assert.True(t, claims.IsFirstLogin)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("v2.local.bukan-token-beneran")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "budi@gmail.com", Role: "admin"}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}
