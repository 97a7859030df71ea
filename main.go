package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"Sistem-Payroll-Karyawan/config"
	_ "Sistem-Payroll-Karyawan/docs"
	"Sistem-Payroll-Karyawan/router"
	"Sistem-Payroll-Karyawan/seeder"
	_ "time/tzdata"
)

// @title Sistem Payroll Karyawan API
// @version 1.0
// @description API absensi geofence dan penggajian bulanan karyawan
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Positions
// @tag.description Position and hourly rate endpoints
//
// @tag.name Attendance
// @tag.description Geofenced attendance endpoints
//
// @tag.name Leaves
// @tag.description Leave request endpoints
//
// @tag.name Payroll
// @tag.description Monthly payroll endpoints
//
// @tag.name Config
// @tag.description Runtime configuration endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if cfg.AppEnv != "production" {
		seeder.SeedAll()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Detail error internal tidak boleh bocor ke klien di production
			message := err.Error()
			if code == fiber.StatusInternalServerError && cfg.AppEnv == "production" {
				log.Printf("Internal error: %v", err)
				message = "Terjadi kesalahan pada server"
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	config.SetupCORS(app)

	app.Use(recover.New())
	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
