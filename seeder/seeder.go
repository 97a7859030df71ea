package seeder

import (
	"Sistem-Payroll-Karyawan/repository"
)

// SeedAll mengisi data awal untuk lingkungan development: jabatan, user
// admin dan karyawan contoh, serta konfigurasi default. Semua seeder aman
// dijalankan berulang, data yang sudah ada dilewati.
func SeedAll() {
	userRepo := repository.NewUserRepository()
	positionRepo := repository.NewPositionRepository()
	configRepo := repository.NewConfigRepository()

	SeedPositions(positionRepo)
	SeedUsers(userRepo, positionRepo)
	SeedConfigs(configRepo)
}
