package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/paseto"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	configRepo     repository.ConfigRepository

	// Jam referensi dan timezone dibuat eksplisit supaya logika "hari ini"
	// bisa dites tanpa tergantung jam server.
	now func() time.Time
	loc *time.Location
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, configRepo repository.ConfigRepository) *AttendanceHandler {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.Local
	}

	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		configRepo:     configRepo,
		now:            time.Now,
		loc:            loc,
	}
}

// parseCoordinates memvalidasi koordinat dari payload. Request tanpa
// koordinat atau dengan nilai yang tidak bisa diparse ditolak sebelum
// menyentuh perhitungan jarak.
func parseCoordinates(latStr, lngStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude tidak valid")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude tidak valid")
	}

	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return 0, 0, fmt.Errorf("koordinat tidak valid")
	}

	return lat, lng, nil
}

// ClockIn godoc
// @Summary Clock In
// @Description Absen masuk dengan koordinat GPS dan foto opsional. Satu kali per hari.
// @Tags Attendance
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param latitude formData string true "Latitude posisi karyawan"
// @Param longitude formData string true "Longitude posisi karyawan"
// @Param note formData string false "Catatan"
// @Param photo formData file false "Foto selfie"
// @Success 201 {object} object{message=string,data=models.Attendance,distance_meters=number} "Berhasil clock in"
// @Failure 400 {object} models.ErrorResponse "Sudah clock in hari ini atau koordinat tidak valid"
// @Failure 401 {object} models.ErrorResponse "Tidak terautentikasi"
// @Router /attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	var payload models.ClockPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	lat, lng, err := parseCoordinates(payload.Latitude, payload.Longitude)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := h.now().In(h.loc).Format("2006-01-02")

	existing, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		log.Printf("Error mencari absensi hari ini: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa absensi hari ini"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah melakukan clock in hari ini"})
	}

	// Konfigurasi geofence dibaca segar setiap request, bukan dari cache
	settings := h.configRepo.LoadGeofenceSettings(ctx)
	withinGeofence, distance := settings.Check(lat, lng)

	photoID := ""
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		photoID, err = saveFileToGridFS(fileHeader)
		if err != nil {
			log.Printf("Error menyimpan foto clock in: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan foto"})
		}
	}

	clockInTime := h.now()
	newAttendance := &models.Attendance{
		UserID:             claims.UserID,
		Date:               today,
		ClockIn:            &clockInTime,
		ClockInLat:         payload.Latitude,
		ClockInLng:         payload.Longitude,
		ClockInPhoto:       photoID,
		IsWithinGeofenceIn: withinGeofence,
		Status:             models.AttendanceStatusPresent,
		ApprovalStatus:     models.ApprovalStatusPending,
		Note:               payload.Note,
	}

	if _, err := h.attendanceRepo.CreateAttendance(ctx, newAttendance); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Berhasil clock in pukul " + clockInTime.In(h.loc).Format("15:04"),
		"data":            newAttendance,
		"within_geofence": withinGeofence,
		"distance_meters": math.Round(distance*100) / 100,
	})
}

// ClockOut godoc
// @Summary Clock Out
// @Description Absen pulang. Harus sudah clock in dan belum clock out hari ini.
// @Tags Attendance
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param latitude formData string true "Latitude posisi karyawan"
// @Param longitude formData string true "Longitude posisi karyawan"
// @Param note formData string false "Catatan"
// @Param photo formData file false "Foto selfie"
// @Success 200 {object} object{message=string,distance_meters=number} "Berhasil clock out"
// @Failure 400 {object} models.ErrorResponse "Belum clock in atau sudah clock out"
// @Failure 401 {object} models.ErrorResponse "Tidak terautentikasi"
// @Router /attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	var payload models.ClockPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	lat, lng, err := parseCoordinates(payload.Latitude, payload.Longitude)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := h.now().In(h.loc).Format("2006-01-02")

	attendance, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		log.Printf("Error mencari absensi hari ini: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa absensi hari ini"})
	}
	if attendance == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Belum ada clock in hari ini"})
	}
	if attendance.ClockOut != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah melakukan clock out hari ini"})
	}

	settings := h.configRepo.LoadGeofenceSettings(ctx)
	withinGeofence, distance := settings.Check(lat, lng)

	photoID := ""
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		photoID, err = saveFileToGridFS(fileHeader)
		if err != nil {
			log.Printf("Error menyimpan foto clock out: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan foto"})
		}
	}

	clockOutTime := h.now()
	updateData := bson.M{
		"clock_out":              clockOutTime,
		"clock_out_lat":          payload.Latitude,
		"clock_out_lng":          payload.Longitude,
		"is_within_geofence_out": withinGeofence,
	}
	if photoID != "" {
		updateData["clock_out_photo"] = photoID
	}
	if payload.Note != "" {
		updateData["note"] = payload.Note
	}

	if _, err := h.attendanceRepo.UpdateAttendance(ctx, attendance.ID, updateData); err != nil {
		log.Printf("Error clock out: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melakukan clock out"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "Berhasil clock out pukul " + clockOutTime.In(h.loc).Format("15:04"),
		"within_geofence": withinGeofence,
		"distance_meters": math.Round(distance*100) / 100,
	})
}

func (h *AttendanceHandler) GetAllAttendances(c *fiber.Ctx) error {
	page, limit := util.ParsePagination(c)

	filter := bson.M{}
	if date := c.Query("date"); date != "" {
		filter["date"] = date
	}
	if period := c.Query("period"); period != "" {
		if _, err := time.Parse("2006-01", period); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format periode tidak valid, gunakan YYYY-MM"})
		}
		filter["date"] = primitive.Regex{Pattern: "^" + period, Options: ""}
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user_id tidak valid"})
		}
		filter["user_id"] = userID
	}
	if approvalStatus := c.Query("approval_status"); approvalStatus != "" {
		filter["approval_status"] = approvalStatus
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendances, total, err := h.attendanceRepo.GetAllAttendances(ctx, filter, page, limit)
	if err != nil {
		log.Printf("Error mengambil absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  attendances,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *AttendanceHandler) GetMyAttendances(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	page, limit := util.ParsePagination(c)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendances, total, err := h.attendanceRepo.FindAttendancesByUserID(ctx, claims.UserID, page, limit)
	if err != nil {
		log.Printf("Error mengambil riwayat absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat absensi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  attendances,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *AttendanceHandler) GetAttendanceByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendance, err := h.attendanceRepo.FindAttendanceByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}
	if attendance == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Absensi tidak ditemukan"})
	}

	if claims.Role != "admin" && attendance.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	return c.Status(fiber.StatusOK).JSON(attendance)
}

// CreateAttendance dipakai admin untuk input manual, misalnya absensi
// susulan yang lupa tercatat.
func (h *AttendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user_id tidak valid"})
	}

	approvalStatus := payload.ApprovalStatus
	if approvalStatus == "" {
		approvalStatus = models.ApprovalStatusPending
	}

	newAttendance := &models.Attendance{
		UserID:         userID,
		Date:           payload.Date,
		Status:         payload.Status,
		ApprovalStatus: approvalStatus,
		Note:           payload.Note,
	}

	if payload.ClockIn != "" {
		clockIn, err := h.composeTime(payload.Date, payload.ClockIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format clock_in tidak valid"})
		}
		newAttendance.ClockIn = &clockIn
	}
	if payload.ClockOut != "" {
		clockOut, err := h.composeTime(payload.Date, payload.ClockOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format clock_out tidak valid"})
		}
		newAttendance.ClockOut = &clockOut
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.attendanceRepo.CreateAttendance(ctx, newAttendance); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newAttendance)
}

func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendance, err := h.attendanceRepo.FindAttendanceByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}
	if attendance == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Absensi tidak ditemukan"})
	}

	updateData := bson.M{}
	if payload.Status != nil {
		updateData["status"] = *payload.Status
	}
	if payload.ApprovalStatus != nil {
		updateData["approval_status"] = *payload.ApprovalStatus
	}
	if payload.Note != nil {
		updateData["note"] = *payload.Note
	}
	if payload.ClockIn != nil {
		clockIn, err := h.composeTime(attendance.Date, *payload.ClockIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format clock_in tidak valid"})
		}
		updateData["clock_in"] = clockIn
	}
	if payload.ClockOut != nil {
		clockOut, err := h.composeTime(attendance.Date, *payload.ClockOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format clock_out tidak valid"})
		}
		updateData["clock_out"] = clockOut
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diupdate"})
	}

	if _, err := h.attendanceRepo.UpdateAttendance(ctx, objID, updateData); err != nil {
		log.Printf("Error mengupdate absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate absensi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Absensi berhasil diupdate"})
}

func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.attendanceRepo.DeleteAttendance(ctx, objID)
	if err != nil {
		log.Printf("Error menghapus absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus absensi"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Absensi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Absensi berhasil dihapus"})
}

// GenerateQRCode membuat QR poster harian berisi deep-link clock in untuk
// dipasang di pintu kantor. QR tidak disimpan; absensi tetap tervalidasi
// geofence saat karyawan membuka link.
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	today := h.now().In(h.loc).Format("2006-01-02")
	payload := fmt.Sprintf("payroll-karyawan://clock-in?date=%s&nonce=%s", today, uuid.New().String())

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"date":    today,
		"payload": payload,
		"qr_code": "data:image/png;base64," + encodedString,
	})
}

// composeTime menggabungkan tanggal absensi dengan jam HH:MM pada timezone
// kantor.
func (h *AttendanceHandler) composeTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, h.loc)
}
