package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/repository"
)

type DashboardHandler struct {
	userRepo       repository.UserRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	payrollRepo    repository.PayrollRepository

	now func() time.Time
	loc *time.Location
}

func NewDashboardHandler(
	userRepo repository.UserRepository,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	payrollRepo repository.PayrollRepository,
) *DashboardHandler {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.Local
	}

	return &DashboardHandler{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		now:            time.Now,
		loc:            loc,
	}
}

// GetDashboardStats merangkum angka-angka yang ditampilkan kartu dashboard
// admin: kehadiran hari ini dan antrian yang menunggu tindakan.
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	nowLocal := h.now().In(h.loc)
	today := nowLocal.Format("2006-01-02")
	currentPeriod := nowLocal.Format("2006-01")

	dayStart := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, h.loc)
	lateAfter := dayStart.Add(8*time.Hour + 10*time.Minute)

	var stats models.DashboardStats
	var err error

	if stats.TotalKaryawan, err = h.userRepo.CountEmployees(ctx); err != nil {
		log.Printf("Error menghitung karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	if stats.HadirHariIni, err = h.attendanceRepo.CountByDate(ctx, today); err != nil {
		log.Printf("Error menghitung kehadiran: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	if stats.TerlambatHariIni, err = h.attendanceRepo.CountLateByDate(ctx, today, lateAfter); err != nil {
		log.Printf("Error menghitung keterlambatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	if stats.CutiPending, err = h.leaveRepo.CountByStatus(ctx, models.LeaveStatusPending); err != nil {
		log.Printf("Error menghitung cuti pending: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	if stats.AbsensiPendingApprov, err = h.attendanceRepo.CountPendingApproval(ctx); err != nil {
		log.Printf("Error menghitung absensi pending: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	if stats.PayrollDraft, err = h.payrollRepo.CountByStatusAndPeriod(ctx, models.PayrollStatusDraft, currentPeriod); err != nil {
		log.Printf("Error menghitung payroll draft: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
