package payroll

import (
	"math"
	"time"

	"Sistem-Payroll-Karyawan/models"
)

// Jam kerja standar perusahaan. Keterlambatan dihitung dari jam 08:00 tapi
// baru dikenakan setelah lewat toleransi 08:10. Lembur dihitung setelah
// jam 16:00 pada tanggal clock in.
const (
	workStartHour     = 8
	lateGraceMinutes  = 10
	overtimeStartHour = 16

	// Shift di atas 4 jam dipotong istirahat 1 jam.
	longShiftMinutes = 240
	breakMinutes     = 60

	Pph21Rate = 0.05
)

// Settings adalah parameter payroll dari config store, dimuat sekali per
// generate lalu dioper eksplisit ke kalkulasi.
type Settings struct {
	LatePenaltyPerMinute    int64
	BpjsKesehatanRate       float64
	BpjsKetenagakerjaanRate float64
}

func DefaultSettings() Settings {
	return Settings{
		LatePenaltyPerMinute:    2000,
		BpjsKesehatanRate:       0.01,
		BpjsKetenagakerjaanRate: 0.02,
	}
}

type DayResult struct {
	WorkMinutes     int64
	LateMinutes     int64
	OvertimeMinutes int64
	OvertimePay     int64
}

// Summary adalah hasil perhitungan satu karyawan untuk satu periode.
// Semua nominal rupiah utuh, dibulatkan ke bawah.
type Summary struct {
	TotalWorkMinutes     int64
	TotalLateMinutes     int64
	TotalOvertimeMinutes int64
	BasicSalary          int64
	OvertimePay          int64
	LateDeduction        int64
	BpjsDeduction        int64
	Pph21Deduction       int64
	TotalNet             int64
}

// CalculateDay menghitung satu hari kerja. Jam dinding mengikuti loc, jadi
// hasilnya deterministik dan tidak tergantung timezone server.
func CalculateDay(clockIn, clockOut time.Time, hourlyRate float64, loc *time.Location) DayResult {
	var result DayResult

	in := clockIn.In(loc)
	out := clockOut.In(loc)

	dayStart := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, loc)
	workStart := dayStart.Add(workStartHour * time.Hour)
	lateThreshold := workStart.Add(lateGraceMinutes * time.Minute)
	overtimeStart := dayStart.Add(overtimeStartHour * time.Hour)

	// Terlambat dihitung dari 08:00 walau toleransinya sampai 08:10,
	// jadi clock in 08:15 terhitung 15 menit.
	if in.After(lateThreshold) {
		result.LateMinutes = int64(in.Sub(workStart).Minutes())
	}

	workMinutes := int64(out.Sub(in).Minutes())
	if workMinutes > longShiftMinutes {
		workMinutes -= breakMinutes
	}
	if workMinutes < 0 {
		workMinutes = 0
	}
	result.WorkMinutes = workMinutes

	if out.After(overtimeStart) {
		result.OvertimeMinutes = int64(out.Sub(overtimeStart).Minutes())

		overtimeHours := float64(result.OvertimeMinutes) / 60.0
		firstHour := math.Min(overtimeHours, 1)
		extraHours := math.Max(overtimeHours-1, 0)
		result.OvertimePay = int64(math.Floor(firstHour*1.5*hourlyRate + extraHours*2*hourlyRate))
	}

	return result
}

// Calculate mengakumulasi seluruh absensi approved yang lengkap (punya clock
// in dan clock out) menjadi satu ringkasan gaji. Tarif 0 menghasilkan baris
// bernilai nol, bukan error. TotalNet bisa negatif kalau potongan melebihi
// gaji.
func Calculate(records []models.Attendance, hourlyRate float64, settings Settings, loc *time.Location) Summary {
	var summary Summary

	for _, record := range records {
		if record.ClockIn == nil || record.ClockOut == nil {
			continue
		}

		day := CalculateDay(*record.ClockIn, *record.ClockOut, hourlyRate, loc)
		summary.TotalWorkMinutes += day.WorkMinutes
		summary.TotalLateMinutes += day.LateMinutes
		summary.TotalOvertimeMinutes += day.OvertimeMinutes
		summary.OvertimePay += day.OvertimePay
	}

	workHours := float64(summary.TotalWorkMinutes) / 60.0
	summary.BasicSalary = int64(math.Floor(workHours * hourlyRate))
	summary.LateDeduction = summary.TotalLateMinutes * settings.LatePenaltyPerMinute
	summary.BpjsDeduction = int64(math.Floor(float64(summary.BasicSalary) * (settings.BpjsKesehatanRate + settings.BpjsKetenagakerjaanRate)))
	summary.Pph21Deduction = int64(math.Floor(float64(summary.BasicSalary) * Pph21Rate))
	summary.TotalNet = summary.BasicSalary + summary.OvertimePay - summary.LateDeduction - summary.BpjsDeduction - summary.Pph21Deduction

	return summary
}
