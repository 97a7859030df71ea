package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Payroll-Karyawan/config"
	"Sistem-Payroll-Karyawan/config/middleware"
	_ "Sistem-Payroll-Karyawan/docs"
	"Sistem-Payroll-Karyawan/handlers"
	"Sistem-Payroll-Karyawan/pkg/mailer"
	"Sistem-Payroll-Karyawan/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	positionRepo := repository.NewPositionRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRequestRepository()
	payrollRepo := repository.NewPayrollRepository()
	configRepo := repository.NewConfigRepository()

	appMailer := mailer.New(cfg)

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo, positionRepo)
	positionHandler := handlers.NewPositionHandler(positionRepo, userRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, configRepo)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveRepo, userRepo, appMailer)
	payrollHandler := handlers.NewPayrollHandler(payrollRepo, attendanceRepo, userRepo, positionRepo, configRepo, appMailer)
	configHandler := handlers.NewConfigHandler(configRepo)
	dashboardHandler := handlers.NewDashboardHandler(userRepo, attendanceRepo, leaveRepo, payrollRepo)
	fileHandler := handlers.NewFileHandler()

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Payroll Karyawan API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", middleware.AuthMiddleware(), authHandler.ChangePassword)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// File routes (foto absensi, lampiran cuti, foto profil)
	api.Get("/files/:id", middleware.AuthMiddleware(), fileHandler.GetFile)

	// User routes. Rute non-admin harus terdaftar sebelum sub-grup admin
	// karena middleware grup di Fiber cocok berdasarkan prefix path.
	userGroup := api.Group("/users", middleware.AuthMiddleware())
	userGroup.Get("/me", userHandler.GetMe)
	userGroup.Get("/:id", userHandler.GetUserByID)
	userGroup.Post("/:id/photo", userHandler.UploadPhoto)
	adminUserGroup := userGroup.Group("/", middleware.AdminMiddleware())
	adminUserGroup.Get("/", userHandler.GetAllUsers)
	adminUserGroup.Post("/", userHandler.CreateUser)
	adminUserGroup.Patch("/:id", userHandler.UpdateUser)
	adminUserGroup.Delete("/:id", userHandler.DeleteUser)

	// Position routes
	positionGroup := api.Group("/positions", middleware.AuthMiddleware())
	positionGroup.Get("/", positionHandler.GetAllPositions)
	positionGroup.Get("/:id", positionHandler.GetPositionByID)
	adminPositionGroup := positionGroup.Group("/", middleware.AdminMiddleware())
	adminPositionGroup.Post("/", positionHandler.CreatePosition)
	adminPositionGroup.Patch("/:id", positionHandler.UpdatePosition)
	adminPositionGroup.Delete("/:id", positionHandler.DeletePosition)

	// Attendance routes. /qr harus sebelum /:id supaya tidak tertangkap
	// sebagai parameter id.
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/clock-in", attendanceHandler.ClockIn)
	attendanceGroup.Post("/clock-out", attendanceHandler.ClockOut)
	attendanceGroup.Get("/me", attendanceHandler.GetMyAttendances)
	attendanceGroup.Get("/qr", middleware.AdminMiddleware(), attendanceHandler.GenerateQRCode)
	attendanceGroup.Get("/:id", attendanceHandler.GetAttendanceByID)
	adminAttendanceGroup := attendanceGroup.Group("/", middleware.AdminMiddleware())
	adminAttendanceGroup.Get("/", attendanceHandler.GetAllAttendances)
	adminAttendanceGroup.Post("/", attendanceHandler.CreateAttendance)
	adminAttendanceGroup.Patch("/:id", attendanceHandler.UpdateAttendance)
	adminAttendanceGroup.Delete("/:id", attendanceHandler.DeleteAttendance)

	// Leave request routes
	leaveGroup := api.Group("/leaves", middleware.AuthMiddleware())
	leaveGroup.Post("/", leaveHandler.CreateLeaveRequest)
	leaveGroup.Get("/me", leaveHandler.GetMyLeaveRequests)
	leaveGroup.Get("/:id", leaveHandler.GetLeaveRequestByID)
	leaveGroup.Patch("/:id", leaveHandler.UpdateLeaveRequest)
	leaveGroup.Delete("/:id", leaveHandler.DeleteLeaveRequest)
	adminLeaveGroup := leaveGroup.Group("/", middleware.AdminMiddleware())
	adminLeaveGroup.Get("/", leaveHandler.GetAllLeaveRequests)
	adminLeaveGroup.Post("/:id/approve", leaveHandler.ApproveLeaveRequest)

	// Payroll routes. /export harus sebelum /:id supaya tidak tertangkap
	// sebagai parameter id.
	payrollGroup := api.Group("/payroll", middleware.AuthMiddleware())
	payrollGroup.Get("/me", payrollHandler.GetMyPayrolls)
	payrollGroup.Get("/export", middleware.AdminMiddleware(), payrollHandler.ExportPayrolls)
	payrollGroup.Get("/:id/slip", payrollHandler.GetPayslip)
	payrollGroup.Get("/:id", payrollHandler.GetPayrollByID)
	adminPayrollGroup := payrollGroup.Group("/", middleware.AdminMiddleware())
	adminPayrollGroup.Post("/generate", payrollHandler.GeneratePayroll)
	adminPayrollGroup.Get("/", payrollHandler.GetAllPayrolls)
	adminPayrollGroup.Post("/", payrollHandler.CreatePayroll)
	adminPayrollGroup.Post("/:id/finalize", payrollHandler.FinalizePayroll)
	adminPayrollGroup.Patch("/:id", payrollHandler.UpdatePayroll)
	adminPayrollGroup.Delete("/:id", payrollHandler.DeletePayroll)

	// Config routes (khusus admin)
	configGroup := api.Group("/config", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	configGroup.Get("/", configHandler.GetAllConfigs)
	configGroup.Post("/bulk", configHandler.BulkUpsertConfig)
	configGroup.Post("/", configHandler.UpsertConfig)
	configGroup.Get("/:key", configHandler.GetConfigByKey)
	configGroup.Delete("/:key", configHandler.DeleteConfig)

	// Dashboard routes (khusus admin)
	api.Get("/dashboard/stats", middleware.AuthMiddleware(), middleware.AdminMiddleware(), dashboardHandler.GetDashboardStats)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
