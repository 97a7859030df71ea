package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/mailer"
	"Sistem-Payroll-Karyawan/pkg/paseto"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type LeaveRequestHandler struct {
	leaveRepo repository.LeaveRequestRepository
	userRepo  repository.UserRepository
	mailer    *mailer.Mailer
	loc       *time.Location
}

func NewLeaveRequestHandler(leaveRepo repository.LeaveRequestRepository, userRepo repository.UserRepository, m *mailer.Mailer) *LeaveRequestHandler {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.Local
	}

	return &LeaveRequestHandler{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		mailer:    m,
		loc:       loc,
	}
}

func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	startDate, err := time.ParseInLocation("2006-01-02", payload.StartDate, h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format tanggal mulai tidak valid"})
	}
	endDate, err := time.ParseInLocation("2006-01-02", payload.EndDate, h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format tanggal selesai tidak valid"})
	}
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal selesai tidak boleh sebelum tanggal mulai"})
	}

	workingDays, err := util.CountWorkingDays(payload.StartDate, payload.EndDate, h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal menghitung hari kerja"})
	}

	attachmentID := ""
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		attachmentID, err = saveFileToGridFS(fileHeader)
		if err != nil {
			log.Printf("Error menyimpan lampiran cuti: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan lampiran"})
		}
	}

	newLeave := &models.LeaveRequest{
		UserID:      claims.UserID,
		Type:        payload.Type,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Reason:      payload.Reason,
		Attachment:  attachmentID,
		WorkingDays: workingDays,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.CreateLeaveRequest(ctx, newLeave); err != nil {
		log.Printf("Error membuat pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat pengajuan cuti"})
	}

	return c.Status(fiber.StatusCreated).JSON(newLeave)
}

func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	page, limit := util.ParsePagination(c)

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user_id tidak valid"})
		}
		filter["user_id"] = userID
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leaves, total, err := h.leaveRepo.GetAllLeaveRequests(ctx, filter, page, limit)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pengajuan cuti"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  leaves,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	page, limit := util.ParsePagination(c)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leaves, total, err := h.leaveRepo.FindLeaveRequestsByUserID(ctx, claims.UserID, page, limit)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan cuti"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  leaves,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *LeaveRequestHandler) GetLeaveRequestByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID pengajuan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveRequestByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan cuti"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan cuti tidak ditemukan"})
	}

	if claims.Role != "admin" && leave.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	return c.Status(fiber.StatusOK).JSON(leave)
}

func (h *LeaveRequestHandler) UpdateLeaveRequest(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID pengajuan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	var payload models.LeaveRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveRequestByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan cuti"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan cuti tidak ditemukan"})
	}

	if claims.Role != "admin" && leave.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}
	if leave.Status != models.LeaveStatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pengajuan yang sudah diproses tidak bisa diubah"})
	}

	updateData := bson.M{}
	if payload.Type != nil {
		updateData["type"] = *payload.Type
	}
	if payload.Reason != nil {
		updateData["reason"] = *payload.Reason
	}

	startDate := leave.StartDate
	endDate := leave.EndDate
	if payload.StartDate != nil {
		startDate = *payload.StartDate
		updateData["start_date"] = startDate
	}
	if payload.EndDate != nil {
		endDate = *payload.EndDate
		updateData["end_date"] = endDate
	}
	if payload.StartDate != nil || payload.EndDate != nil {
		workingDays, err := util.CountWorkingDays(startDate, endDate, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rentang tanggal tidak valid"})
		}
		updateData["working_days"] = workingDays
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diupdate"})
	}

	if _, err := h.leaveRepo.UpdateLeaveRequest(ctx, objID, updateData); err != nil {
		log.Printf("Error mengupdate pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate pengajuan cuti"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pengajuan cuti berhasil diupdate"})
}

// ApproveLeaveRequest memutuskan pengajuan cuti. Keputusan hanya bisa
// diambil sekali dari status pending dan tidak bisa dibalik lewat endpoint
// ini.
func (h *LeaveRequestHandler) ApproveLeaveRequest(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID pengajuan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	var payload models.LeaveApprovalPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.Status != models.LeaveStatusApproved && payload.Status != models.LeaveStatusRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveRequestByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan cuti"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan cuti tidak ditemukan"})
	}
	if leave.Status != models.LeaveStatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pengajuan sudah diproses"})
	}

	updateData := bson.M{
		"status":      payload.Status,
		"approved_by": claims.UserID,
	}

	if _, err := h.leaveRepo.UpdateLeaveRequest(ctx, objID, updateData); err != nil {
		log.Printf("Error memproses pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses pengajuan cuti"})
	}

	if h.mailer.Enabled() {
		requester, err := h.userRepo.FindUserByID(ctx, leave.UserID)
		if err == nil && requester != nil {
			go func(email, name, status, startDate, endDate string) {
				if err := h.mailer.SendLeaveDecision(email, name, status, startDate, endDate); err != nil {
					log.Printf("Error mengirim email keputusan cuti: %v", err)
				}
			}(requester.Email, requester.Name, payload.Status, leave.StartDate, leave.EndDate)
		}
	}

	messages := map[string]string{
		models.LeaveStatusApproved: "Pengajuan cuti disetujui",
		models.LeaveStatusRejected: "Pengajuan cuti ditolak",
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": messages[payload.Status]})
}

func (h *LeaveRequestHandler) DeleteLeaveRequest(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID pengajuan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveRequestByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengajuan cuti"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan cuti tidak ditemukan"})
	}

	if claims.Role != "admin" {
		if leave.UserID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
		}
		if leave.Status != models.LeaveStatusPending {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pengajuan yang sudah diproses tidak bisa dihapus"})
		}
	}

	if _, err := h.leaveRepo.DeleteLeaveRequest(ctx, objID); err != nil {
		log.Printf("Error menghapus pengajuan cuti: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pengajuan cuti"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pengajuan cuti berhasil dihapus"})
}
