package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/config"
	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/mailer"
	"Sistem-Payroll-Karyawan/pkg/paseto"
)

func newLeaveTestApp(t *testing.T, leaveRepo *fakeLeaveRepo, userRepo *fakeUserRepo, claims *paseto.Claims) *fiber.App {
	t.Helper()

	disabledMailer := mailer.New(&config.AppConfig{MailSender: "no-reply@test.local"})
	h := NewLeaveRequestHandler(leaveRepo, userRepo, disabledMailer)
	h.loc = testLocation(t)

	app := fiber.New()
	app.Use(injectClaims(claims))
	app.Post("/leave-requests", h.CreateLeaveRequest)
	app.Get("/leave-requests/me", h.GetMyLeaveRequests)
	app.Get("/leave-requests", h.GetAllLeaveRequests)
	app.Get("/leave-requests/:id", h.GetLeaveRequestByID)
	app.Patch("/leave-requests/:id/approve", h.ApproveLeaveRequest)
	app.Patch("/leave-requests/:id", h.UpdateLeaveRequest)
	app.Delete("/leave-requests/:id", h.DeleteLeaveRequest)
	return app
}

func seedLeave(t *testing.T, repo *fakeLeaveRepo, userID primitive.ObjectID, status string) *models.LeaveRequest {
	t.Helper()

	leave := &models.LeaveRequest{
		UserID:      userID,
		Type:        "annual",
		StartDate:   "2025-03-03",
		EndDate:     "2025-03-07",
		Reason:      "Liburan keluarga",
		WorkingDays: 5,
	}
	_, err := repo.CreateLeaveRequest(t.Context(), leave)
	require.NoError(t, err)

	if status != models.LeaveStatusPending {
		_, err = repo.UpdateLeaveRequest(t.Context(), leave.ID, bson.M{"status": status})
		require.NoError(t, err)
	}
	return leave
}

func TestCreateLeaveRequest(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	me := primitive.NewObjectID()
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))

	// Senin 3 Maret sampai Jumat 7 Maret 2025, akhir pekan tidak dihitung
	req := formRequest(t, "POST", "/leave-requests", map[string]string{
		"type":       "annual",
		"start_date": "2025-03-03",
		"end_date":   "2025-03-07",
		"reason":     "Liburan keluarga di Palembang",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 5.0, body["working_days"])
	assert.Equal(t, models.LeaveStatusPending, body["status"])
	assert.Equal(t, me.Hex(), body["user_id"])

	require.Len(t, leaveRepo.items, 1)
	assert.Equal(t, me, leaveRepo.items[0].UserID)
	assert.Equal(t, 5, leaveRepo.items[0].WorkingDays)
}

func TestCreateLeaveRequestEndBeforeStart(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(primitive.NewObjectID()))

	req := formRequest(t, "POST", "/leave-requests", map[string]string{
		"type":       "annual",
		"start_date": "2025-03-07",
		"end_date":   "2025-03-03",
		"reason":     "Liburan keluarga",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Tanggal selesai tidak boleh sebelum tanggal mulai", body["error"])
	assert.Empty(t, leaveRepo.items)
}

func TestCreateLeaveRequestInvalidPayload(t *testing.T) {
	app := newLeaveTestApp(t, &fakeLeaveRepo{}, &fakeUserRepo{}, employeeClaims(primitive.NewObjectID()))

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{
			name: "jenis cuti tidak dikenal",
			fields: map[string]string{
				"type": "vacation", "start_date": "2025-03-03", "end_date": "2025-03-07", "reason": "Liburan keluarga",
			},
		},
		{
			name: "alasan terlalu pendek",
			fields: map[string]string{
				"type": "sick", "start_date": "2025-03-03", "end_date": "2025-03-07", "reason": "flu",
			},
		},
		{
			name: "format tanggal salah",
			fields: map[string]string{
				"type": "annual", "start_date": "03-03-2025", "end_date": "2025-03-07", "reason": "Liburan keluarga",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(formRequest(t, "POST", "/leave-requests", tt.fields))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestApproveLeaveRequest(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	leave := seedLeave(t, leaveRepo, primitive.NewObjectID(), models.LeaveStatusPending)

	admin := adminClaims()
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, admin)

	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex()+"/approve", models.LeaveApprovalPayload{Status: models.LeaveStatusApproved}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Pengajuan cuti disetujui", body["message"])

	stored := leaveRepo.items[0]
	assert.Equal(t, models.LeaveStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, admin.UserID, *stored.ApprovedBy)

	// Keputusan hanya bisa diambil sekali
	resp, err = app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex()+"/approve", models.LeaveApprovalPayload{Status: models.LeaveStatusRejected}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = parseBody(t, resp)
	assert.Equal(t, "Pengajuan sudah diproses", body["error"])
	assert.Equal(t, models.LeaveStatusApproved, leaveRepo.items[0].Status)
}

func TestApproveLeaveRequestReject(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	leave := seedLeave(t, leaveRepo, primitive.NewObjectID(), models.LeaveStatusPending)
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, adminClaims())

	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex()+"/approve", models.LeaveApprovalPayload{Status: models.LeaveStatusRejected}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Pengajuan cuti ditolak", body["message"])
	assert.Equal(t, models.LeaveStatusRejected, leaveRepo.items[0].Status)
}

func TestApproveLeaveRequestInvalidStatus(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	leave := seedLeave(t, leaveRepo, primitive.NewObjectID(), models.LeaveStatusPending)
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, adminClaims())

	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex()+"/approve", fiber.Map{"status": "maybe"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Status tidak valid", body["error"])
	assert.Equal(t, models.LeaveStatusPending, leaveRepo.items[0].Status)
}

func TestUpdateLeaveRequestRecalculatesWorkingDays(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	me := primitive.NewObjectID()
	leave := seedLeave(t, leaveRepo, me, models.LeaveStatusPending)
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))

	newEnd := "2025-03-05"
	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex(), models.LeaveRequestUpdatePayload{EndDate: &newEnd}))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored := leaveRepo.items[0]
	assert.Equal(t, "2025-03-05", stored.EndDate)
	assert.Equal(t, 3, stored.WorkingDays)
}

func TestUpdateLeaveRequestProcessedRejected(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	me := primitive.NewObjectID()
	leave := seedLeave(t, leaveRepo, me, models.LeaveStatusApproved)
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))

	newReason := "Ganti alasan cuti"
	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex(), models.LeaveRequestUpdatePayload{Reason: &newReason}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Pengajuan yang sudah diproses tidak bisa diubah", body["error"])
	assert.Equal(t, "Liburan keluarga", leaveRepo.items[0].Reason)
}

func TestUpdateLeaveRequestForbiddenForOtherEmployee(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	leave := seedLeave(t, leaveRepo, primitive.NewObjectID(), models.LeaveStatusPending)
	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(primitive.NewObjectID()))

	newReason := "Ganti alasan cuti"
	resp, err := app.Test(jsonRequest("PATCH", "/leave-requests/"+leave.ID.Hex(), models.LeaveRequestUpdatePayload{Reason: &newReason}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Akses ditolak", body["error"])
}

func TestDeleteLeaveRequest(t *testing.T) {
	me := primitive.NewObjectID()

	t.Run("karyawan menghapus pengajuan pending miliknya", func(t *testing.T) {
		leaveRepo := &fakeLeaveRepo{}
		leave := seedLeave(t, leaveRepo, me, models.LeaveStatusPending)
		app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))

		resp, err := app.Test(jsonRequest("DELETE", "/leave-requests/"+leave.ID.Hex(), nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, leaveRepo.items)
	})

	t.Run("pengajuan yang sudah diproses tidak bisa dihapus karyawan", func(t *testing.T) {
		leaveRepo := &fakeLeaveRepo{}
		leave := seedLeave(t, leaveRepo, me, models.LeaveStatusApproved)
		app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))

		resp, err := app.Test(jsonRequest("DELETE", "/leave-requests/"+leave.ID.Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := parseBody(t, resp)
		assert.Equal(t, "Pengajuan yang sudah diproses tidak bisa dihapus", body["error"])
		assert.Len(t, leaveRepo.items, 1)
	})

	t.Run("admin boleh menghapus pengajuan yang sudah diproses", func(t *testing.T) {
		leaveRepo := &fakeLeaveRepo{}
		leave := seedLeave(t, leaveRepo, me, models.LeaveStatusApproved)
		app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, adminClaims())

		resp, err := app.Test(jsonRequest("DELETE", "/leave-requests/"+leave.ID.Hex(), nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, leaveRepo.items)
	})
}

func TestGetLeaveRequestByIDAccess(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	me := primitive.NewObjectID()
	leave := seedLeave(t, leaveRepo, me, models.LeaveStatusPending)

	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))
	resp, err := app.Test(jsonRequest("GET", "/leave-requests/"+leave.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, leave.ID.Hex(), body["id"])

	app = newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(primitive.NewObjectID()))
	resp, err = app.Test(jsonRequest("GET", "/leave-requests/"+leave.ID.Hex(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetMyLeaveRequests(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	me := primitive.NewObjectID()
	seedLeave(t, leaveRepo, me, models.LeaveStatusPending)
	seedLeave(t, leaveRepo, primitive.NewObjectID(), models.LeaveStatusPending)

	app := newLeaveTestApp(t, leaveRepo, &fakeUserRepo{}, employeeClaims(me))
	resp, err := app.Test(jsonRequest("GET", "/leave-requests/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 1.0, body["total"])
}
