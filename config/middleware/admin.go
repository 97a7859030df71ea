package middleware

import (
	pasetoPkg "Sistem-Payroll-Karyawan/pkg/paseto"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware hanya meloloskan user dengan role admin. Dipasang setelah
// AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*pasetoPkg.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: claims tidak ditemukan",
			})
		}

		if claims.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Akses ditolak: hanya admin yang diizinkan",
			})
		}

		return c.Next()
	}
}
