package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gofpdf "github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/mailer"
	"Sistem-Payroll-Karyawan/pkg/paseto"
	"Sistem-Payroll-Karyawan/pkg/payroll"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type PayrollHandler struct {
	payrollRepo    repository.PayrollRepository
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	positionRepo   repository.PositionRepository
	configRepo     repository.ConfigRepository
	mailer         *mailer.Mailer

	now func() time.Time
	loc *time.Location
}

func NewPayrollHandler(
	payrollRepo repository.PayrollRepository,
	attendanceRepo repository.AttendanceRepository,
	userRepo repository.UserRepository,
	positionRepo repository.PositionRepository,
	configRepo repository.ConfigRepository,
	m *mailer.Mailer,
) *PayrollHandler {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.Local
	}

	return &PayrollHandler{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		positionRepo:   positionRepo,
		configRepo:     configRepo,
		mailer:         m,
		now:            time.Now,
		loc:            loc,
	}
}

// GeneratePayroll godoc
// @Summary Generate payroll satu periode
// @Description Menghitung ulang payroll seluruh karyawan non-admin untuk periode YYYY-MM dari absensi approved yang lengkap. Baris lama periode tersebut dihapus, termasuk yang sudah final.
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PayrollGeneratePayload true "Periode payroll"
// @Success 200 {object} models.PayrollGenerateResponse
// @Failure 400 {object} models.ErrorResponse "Format periode tidak valid"
// @Failure 500 {object} models.ErrorResponse
// @Router /payroll/generate [post]
func (h *PayrollHandler) GeneratePayroll(c *fiber.Ctx) error {
	var payload models.PayrollGeneratePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if _, err := time.Parse("2006-01", payload.Period); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format periode tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	// Generate selalu menghitung dari nol. Baris final ikut terhapus, jadi
	// jumlahnya dilaporkan balik supaya admin sadar ada slip yang tergantikan.
	replacedFinal, err := h.payrollRepo.CountByStatusAndPeriod(ctx, models.PayrollStatusFinal, payload.Period)
	if err != nil {
		log.Printf("Error menghitung payroll final: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa payroll periode ini"})
	}
	if replacedFinal > 0 {
		log.Printf("Peringatan: generate periode %s menghapus %d payroll yang sudah final", payload.Period, replacedFinal)
	}

	deleted, err := h.payrollRepo.DeleteByPeriod(ctx, payload.Period)
	if err != nil {
		log.Printf("Error menghapus payroll lama: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus payroll lama"})
	}

	employees, err := h.userRepo.FindEmployees(ctx)
	if err != nil {
		log.Printf("Error mengambil karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}

	settings := h.configRepo.LoadPayrollSettings(ctx)
	generatedAt := h.now()

	payrolls := make([]models.Payroll, 0, len(employees))
	for _, employee := range employees {
		hourlyRate := 0.0
		if employee.PositionID != nil {
			position, err := h.positionRepo.FindPositionByID(ctx, *employee.PositionID)
			if err != nil {
				log.Printf("Error mengambil jabatan karyawan %s: %v", employee.ID.Hex(), err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
			}
			if position != nil {
				hourlyRate = position.HourlyRate
			}
		}

		records, err := h.attendanceRepo.FindApprovedCompleteInPeriod(ctx, employee.ID, payload.Period)
		if err != nil {
			log.Printf("Error mengambil absensi karyawan %s: %v", employee.ID.Hex(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
		}

		summary := payroll.Calculate(records, hourlyRate, settings, h.loc)

		payrolls = append(payrolls, models.Payroll{
			UserID:               employee.ID,
			Period:               payload.Period,
			BasicSalary:          summary.BasicSalary,
			OvertimePay:          summary.OvertimePay,
			LateDeduction:        summary.LateDeduction,
			BpjsDeduction:        summary.BpjsDeduction,
			Pph21Deduction:       summary.Pph21Deduction,
			TotalNet:             summary.TotalNet,
			Status:               models.PayrollStatusDraft,
			TotalWorkMinutes:     summary.TotalWorkMinutes,
			TotalLateMinutes:     summary.TotalLateMinutes,
			TotalOvertimeMinutes: summary.TotalOvertimeMinutes,
			GeneratedAt:          generatedAt,
		})
	}

	if len(payrolls) > 0 {
		if err := h.payrollRepo.InsertPayrolls(ctx, payrolls); err != nil {
			log.Printf("Error menyimpan payroll: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan payroll"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        fmt.Sprintf("Payroll periode %s berhasil digenerate", payload.Period),
		"period":         payload.Period,
		"count":          len(payrolls),
		"deleted_count":  deleted,
		"replaced_final": replacedFinal,
		"data":           payrolls,
	})
}

// FinalizePayroll godoc
// @Summary Finalisasi payroll
// @Description Mengunci satu baris payroll menjadi final dan mengirim slip gaji PDF ke email karyawan.
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID payroll"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Payroll sudah final"
// @Failure 404 {object} models.ErrorResponse "Payroll tidak ditemukan"
// @Router /payroll/{id}/finalize [post]
func (h *PayrollHandler) FinalizePayroll(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID payroll tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payrollRow, err := h.payrollRepo.FindPayrollByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}
	if payrollRow == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll tidak ditemukan"})
	}
	if payrollRow.Status == models.PayrollStatusFinal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payroll sudah difinalkan"})
	}

	if _, err := h.payrollRepo.UpdatePayroll(ctx, objID, bson.M{"status": models.PayrollStatusFinal}); err != nil {
		log.Printf("Error finalisasi payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal finalisasi payroll"})
	}

	if h.mailer.Enabled() {
		employee, err := h.userRepo.FindUserByID(ctx, payrollRow.UserID)
		if err == nil && employee != nil {
			positionTitle := ""
			if employee.PositionID != nil {
				if position, err := h.positionRepo.FindPositionByID(ctx, *employee.PositionID); err == nil && position != nil {
					positionTitle = position.Title
				}
			}

			pdf, err := buildPayslipPDF(payrollRow, employee.Name, positionTitle)
			if err != nil {
				log.Printf("Error membuat PDF slip gaji: %v", err)
			} else {
				go func(email, name, period string, pdf []byte) {
					if err := h.mailer.SendPayslip(email, name, period, pdf); err != nil {
						log.Printf("Error mengirim slip gaji: %v", err)
					}
				}(employee.Email, employee.Name, payrollRow.Period, pdf)
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Payroll berhasil difinalkan"})
}

func (h *PayrollHandler) GetAllPayrolls(c *fiber.Ctx) error {
	page, limit := util.ParsePagination(c)

	filter := bson.M{}
	if period := c.Query("period"); period != "" {
		filter["period"] = period
	}
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

	payrolls, total, err := h.payrollRepo.GetAllPayrolls(ctx, filter, page, limit)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  payrolls,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *PayrollHandler) GetMyPayrolls(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	page, limit := util.ParsePagination(c)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payrolls, total, err := h.payrollRepo.FindPayrollsByUserID(ctx, claims.UserID, page, limit)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  payrolls,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *PayrollHandler) GetPayrollByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID payroll tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payrollRow, err := h.payrollRepo.FindPayrollByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}
	if payrollRow == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll tidak ditemukan"})
	}

	if claims.Role != "admin" && payrollRow.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	return c.Status(fiber.StatusOK).JSON(payrollRow)
}

// CreatePayroll dipakai admin untuk input manual satu baris gaji di luar
// proses generate, misalnya koreksi susulan. total_net dihitung ulang dari
// komponennya, status selalu mulai dari draft.
func (h *PayrollHandler) CreatePayroll(c *fiber.Ctx) error {
	var payload models.PayrollCreatePayload
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

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		log.Printf("Error mengambil karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	totalNet := payload.BasicSalary + payload.OvertimePay + payload.Bonus -
		payload.LateDeduction - payload.BpjsDeduction - payload.Pph21Deduction - payload.OtherDeduction

	newPayroll := &models.Payroll{
		UserID:         userID,
		Period:         payload.Period,
		BasicSalary:    payload.BasicSalary,
		OvertimePay:    payload.OvertimePay,
		Bonus:          payload.Bonus,
		LateDeduction:  payload.LateDeduction,
		BpjsDeduction:  payload.BpjsDeduction,
		Pph21Deduction: payload.Pph21Deduction,
		OtherDeduction: payload.OtherDeduction,
		TotalNet:       totalNet,
		Status:         models.PayrollStatusDraft,
		GeneratedAt:    h.now(),
	}

	if _, err := h.payrollRepo.CreatePayroll(ctx, newPayroll); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newPayroll)
}

func (h *PayrollHandler) UpdatePayroll(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID payroll tidak valid"})
	}

	var payload models.PayrollUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payrollRow, err := h.payrollRepo.FindPayrollByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}
	if payrollRow == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll tidak ditemukan"})
	}
	if payrollRow.Status == models.PayrollStatusFinal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payroll final tidak bisa diubah"})
	}

	updateData := bson.M{}
	bonus := payrollRow.Bonus
	otherDeduction := payrollRow.OtherDeduction

	if payload.Bonus != nil {
		bonus = *payload.Bonus
		updateData["bonus"] = bonus
	}
	if payload.OtherDeduction != nil {
		otherDeduction = *payload.OtherDeduction
		updateData["other_deduction"] = otherDeduction
	}
	if payload.Status != nil {
		updateData["status"] = *payload.Status
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diupdate"})
	}

	if payload.Bonus != nil || payload.OtherDeduction != nil {
		updateData["total_net"] = payrollRow.BasicSalary + payrollRow.OvertimePay + bonus -
			payrollRow.LateDeduction - payrollRow.BpjsDeduction - payrollRow.Pph21Deduction - otherDeduction
	}

	if _, err := h.payrollRepo.UpdatePayroll(ctx, objID, updateData); err != nil {
		log.Printf("Error mengupdate payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Payroll berhasil diupdate"})
}

func (h *PayrollHandler) DeletePayroll(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID payroll tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.payrollRepo.DeletePayroll(ctx, objID)
	if err != nil {
		log.Printf("Error menghapus payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus payroll"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Payroll berhasil dihapus"})
}

// ExportPayrolls godoc
// @Summary Export payroll ke Excel
// @Description Mengunduh rekap payroll satu periode sebagai file XLSX.
// @Tags Payroll
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param period query string true "Periode payroll (YYYY-MM)"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse "Format periode tidak valid"
// @Router /payroll/export [get]
func (h *PayrollHandler) ExportPayrolls(c *fiber.Ctx) error {
	period := c.Query("period")
	if _, err := time.Parse("2006-01", period); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format periode tidak valid, gunakan YYYY-MM"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	payrolls, err := h.payrollRepo.FindPayrollsByPeriod(ctx, period)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}

	buf, err := buildPayrollWorkbook(period, payrolls)
	if err != nil {
		log.Printf("Error membuat file Excel: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file Excel"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="payroll-%s.xlsx"`, period))

	return c.Send(buf.Bytes())
}

// GetPayslip mengunduh slip gaji PDF. Karyawan hanya bisa mengunduh slip
// miliknya sendiri.
func (h *PayrollHandler) GetPayslip(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID payroll tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	payrollRow, err := h.payrollRepo.FindPayrollByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil payroll: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data payroll"})
	}
	if payrollRow == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll tidak ditemukan"})
	}

	if claims.Role != "admin" && payrollRow.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	employee, err := h.userRepo.FindUserByID(ctx, payrollRow.UserID)
	if err != nil {
		log.Printf("Error mengambil karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}

	employeeName := ""
	positionTitle := ""
	if employee != nil {
		employeeName = employee.Name
		if employee.PositionID != nil {
			if position, err := h.positionRepo.FindPositionByID(ctx, *employee.PositionID); err == nil && position != nil {
				positionTitle = position.Title
			}
		}
	}

	pdf, err := buildPayslipPDF(payrollRow, employeeName, positionTitle)
	if err != nil {
		log.Printf("Error membuat PDF slip gaji: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat slip gaji"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="slip-gaji-%s.pdf"`, payrollRow.Period))

	return c.Send(pdf)
}

// buildPayrollWorkbook menyusun rekap XLSX satu periode, satu baris per
// karyawan.
func buildPayrollWorkbook(period string, payrolls []models.PayrollWithUser) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 3, // #,##0
	})
	if err != nil {
		return nil, err
	}

	headers := []string{
		"No", "Nama", "Jabatan", "Menit Kerja", "Menit Terlambat", "Menit Lembur",
		"Gaji Pokok", "Upah Lembur", "Bonus", "Potongan Terlambat", "Potongan BPJS",
		"Potongan PPh21", "Potongan Lain", "Gaji Bersih", "Status",
	}

	if err := f.MergeCell(sheet, "A1", "O1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Rekap Payroll Periode %s", period))
	f.SetCellStyle(sheet, "A1", "O1", titleStyle)

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A2", "O2", headerStyle)

	for i, row := range payrolls {
		rowNum := i + 3
		values := []interface{}{
			i + 1, row.UserName, row.PositionTitle,
			row.TotalWorkMinutes, row.TotalLateMinutes, row.TotalOvertimeMinutes,
			row.BasicSalary, row.OvertimePay, row.Bonus, row.LateDeduction,
			row.BpjsDeduction, row.Pph21Deduction, row.OtherDeduction,
			row.TotalNet, row.Status,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}

		moneyStart, _ := excelize.CoordinatesToCellName(7, rowNum)
		moneyEnd, _ := excelize.CoordinatesToCellName(14, rowNum)
		f.SetCellStyle(sheet, moneyStart, moneyEnd, moneyStyle)
	}

	f.SetColWidth(sheet, "A", "A", 5)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "F", 14)
	f.SetColWidth(sheet, "G", "N", 16)
	f.SetColWidth(sheet, "O", "O", 10)

	return f.WriteToBuffer()
}

// buildPayslipPDF menyusun slip gaji satu halaman untuk satu baris payroll.
func buildPayslipPDF(p *models.Payroll, employeeName, positionTitle string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "SLIP GAJI KARYAWAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Periode %s", p.Period), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	identity := [][2]string{
		{"Nama", employeeName},
		{"Jabatan", positionTitle},
		{"Status", p.Status},
	}
	for _, row := range identity {
		pdf.CellFormat(50, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, ": "+row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Pendapatan", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	earnings := [][2]string{
		{"Gaji Pokok", formatRupiah(p.BasicSalary)},
		{"Upah Lembur", formatRupiah(p.OvertimePay)},
		{"Bonus", formatRupiah(p.Bonus)},
	}
	for _, row := range earnings {
		pdf.CellFormat(100, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Potongan", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	deductions := [][2]string{
		{fmt.Sprintf("Keterlambatan (%d menit)", p.TotalLateMinutes), formatRupiah(p.LateDeduction)},
		{"BPJS", formatRupiah(p.BpjsDeduction)},
		{"PPh 21", formatRupiah(p.Pph21Deduction)},
		{"Lain-lain", formatRupiah(p.OtherDeduction)},
	}
	for _, row := range deductions {
		pdf.CellFormat(100, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(100, 9, "GAJI BERSIH", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 9, formatRupiah(p.TotalNet), "T", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total kerja %d menit, lembur %d menit.", p.TotalWorkMinutes, p.TotalOvertimeMinutes), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Dokumen ini dibuat otomatis dan tidak memerlukan tanda tangan.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// formatRupiah menulis nominal dengan pemisah ribuan gaya Indonesia,
// misalnya -52500 menjadi "-Rp 52.500".
func formatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	return sign + "Rp " + strings.Join(parts, ".")
}
