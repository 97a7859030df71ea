package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Payroll-Karyawan/models"
)

func TestGetDashboardStats(t *testing.T) {
	userRepo := &fakeUserRepo{}
	attendanceRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{}
	payrollRepo := &fakePayrollRepo{}

	loc := testLocation(t)

	h := NewDashboardHandler(userRepo, attendanceRepo, leaveRepo, payrollRepo)
	h.now = fixedClock(t, "2025-03-03 10:00", loc)
	h.loc = loc

	app := fiber.New()
	app.Use(injectClaims(adminClaims()))
	app.Get("/dashboard", h.GetDashboardStats)

	// Dua karyawan dan satu admin: admin tidak dihitung
	budi := &models.User{Name: "Budi Santoso", Email: "budi@gmail.com", Role: "employee", Status: "active"}
	siti := &models.User{Name: "Siti Aminah", Email: "siti@gmail.com", Role: "employee", Status: "active"}
	admin := &models.User{Name: "Admin Utama", Email: "admin@gmail.com", Role: "admin", Status: "active"}
	for _, u := range []*models.User{budi, siti, admin} {
		_, err := userRepo.CreateUser(t.Context(), u)
		require.NoError(t, err)
	}

	// Budi clock in tepat 08:10 dan belum terlambat, batasnya strictly
	// after. Siti 08:11 sudah terlambat.
	clockAt := func(value string) *time.Time {
		parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
		require.NoError(t, err)
		return &parsed
	}

	_, err := attendanceRepo.CreateAttendance(t.Context(), &models.Attendance{
		UserID:         budi.ID,
		Date:           "2025-03-03",
		ClockIn:        clockAt("2025-03-03 08:10"),
		Status:         models.AttendanceStatusPresent,
		ApprovalStatus: models.ApprovalStatusApproved,
	})
	require.NoError(t, err)

	_, err = attendanceRepo.CreateAttendance(t.Context(), &models.Attendance{
		UserID:         siti.ID,
		Date:           "2025-03-03",
		ClockIn:        clockAt("2025-03-03 08:11"),
		Status:         models.AttendanceStatusPresent,
		ApprovalStatus: models.ApprovalStatusPending,
	})
	require.NoError(t, err)

	// Absensi kemarin tidak ikut dihitung untuk kartu "hari ini"
	_, err = attendanceRepo.CreateAttendance(t.Context(), &models.Attendance{
		UserID:         budi.ID,
		Date:           "2025-02-28",
		ClockIn:        clockAt("2025-02-28 08:30"),
		Status:         models.AttendanceStatusPresent,
		ApprovalStatus: models.ApprovalStatusApproved,
	})
	require.NoError(t, err)

	seedLeave(t, leaveRepo, budi.ID, models.LeaveStatusPending)
	seedLeave(t, leaveRepo, siti.ID, models.LeaveStatusApproved)

	require.NoError(t, payrollRepo.InsertPayrolls(t.Context(), []models.Payroll{
		{UserID: budi.ID, Period: "2025-03", TotalNet: 142600, Status: models.PayrollStatusDraft},
		{UserID: siti.ID, Period: "2025-03", TotalNet: 90000, Status: models.PayrollStatusFinal},
		{UserID: budi.ID, Period: "2025-02", TotalNet: 100000, Status: models.PayrollStatusDraft},
	}))

	resp, err := app.Test(jsonRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 2.0, body["total_karyawan"])
	assert.Equal(t, 2.0, body["hadir_hari_ini"])
	assert.Equal(t, 1.0, body["terlambat_hari_ini"])
	assert.Equal(t, 1.0, body["cuti_pending"])
	assert.Equal(t, 1.0, body["absensi_pending_approval"])
	assert.Equal(t, 1.0, body["payroll_draft_periode_ini"])
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	h := NewDashboardHandler(&fakeUserRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakePayrollRepo{})
	h.now = fixedClock(t, "2025-03-03 10:00", testLocation(t))
	h.loc = testLocation(t)

	app := fiber.New()
	app.Use(injectClaims(adminClaims()))
	app.Get("/dashboard", h.GetDashboardStats)

	resp, err := app.Test(jsonRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 0.0, body["total_karyawan"])
	assert.Equal(t, 0.0, body["hadir_hari_ini"])
	assert.Equal(t, 0.0, body["payroll_draft_periode_ini"])
}
