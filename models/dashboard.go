package models

type DashboardStats struct {
	TotalKaryawan        int64 `json:"total_karyawan"`
	HadirHariIni         int64 `json:"hadir_hari_ini"`
	TerlambatHariIni     int64 `json:"terlambat_hari_ini"`
	CutiPending          int64 `json:"cuti_pending"`
	AbsensiPendingApprov int64 `json:"absensi_pending_approval"`
	PayrollDraft         int64 `json:"payroll_draft_periode_ini"`
}
