package middleware

import (
	"strings"

	pasetoPkg "Sistem-Payroll-Karyawan/pkg/paseto"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware memvalidasi token PASETO dari header Authorization dan
// menyimpan claims ke c.Locals("user") untuk handler berikutnya.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: token tidak ditemukan",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: format token harus 'Bearer <token>'",
			})
		}

		claims, err := pasetoPkg.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: token tidak valid atau kadaluarsa",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
