package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	pasetoPkg "Sistem-Payroll-Karyawan/pkg/paseto"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/protected", func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*pasetoPkg.Claims)
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadFormat(t *testing.T) {
	app := newProtectedApp()

	tests := []struct {
		name   string
		header string
	}{
		{name: "tanpa skema Bearer", header: "Token abcdef"},
		{name: "token sampah", header: "Bearer bukan-token-paseto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", tt.header)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp()

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "budi@gmail.com",
		Role:  "employee",
	}
	token, err := pasetoPkg.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	newAdminApp := func(claims *pasetoPkg.Claims) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if claims != nil {
				c.Locals("user", claims)
			}
			return c.Next()
		})
		app.Use(AdminMiddleware())
		app.Get("/admin-only", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	t.Run("admin diloloskan", func(t *testing.T) {
		app := newAdminApp(&pasetoPkg.Claims{UserID: primitive.NewObjectID(), Role: "admin"})
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("karyawan ditolak", func(t *testing.T) {
		app := newAdminApp(&pasetoPkg.Claims{UserID: primitive.NewObjectID(), Role: "employee"})
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("tanpa claims ditolak", func(t *testing.T) {
		app := newAdminApp(nil)
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
