package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/repository"
)

func SeedConfigs(configRepo repository.ConfigRepository) {
	log.Println("🌱 Memulai seeding konfigurasi...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries := []models.ConfigEntry{
		{Key: models.ConfigKeyOfficeLat, Value: "-2.9795731113284303", Description: "Latitude kantor"},
		{Key: models.ConfigKeyOfficeLng, Value: "104.73111003716011", Description: "Longitude kantor"},
		{Key: models.ConfigKeyGeofenceRadius, Value: "100", Description: "Radius geofence dalam meter"},
		{Key: models.ConfigKeyLatePenaltyPerMinute, Value: "2000", Description: "Denda keterlambatan per menit (rupiah)"},
		{Key: models.ConfigKeyBpjsKesehatanRate, Value: "0.01", Description: "Rate BPJS Kesehatan dari gaji pokok"},
		{Key: models.ConfigKeyBpjsKetenagakerjaanRate, Value: "0.02", Description: "Rate BPJS Ketenagakerjaan dari gaji pokok"},
	}

	for _, entry := range entries {
		existing, err := configRepo.FindEntryByKey(ctx, entry.Key)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: Konfigurasi %s sudah ada.\n", entry.Key)
			continue
		}

		newEntry := entry
		if err := configRepo.UpsertEntry(ctx, &newEntry); err != nil {
			log.Printf("❌ Gagal menyimpan konfigurasi %s: %v\n", entry.Key, err)
		} else {
			fmt.Printf("✔ Konfigurasi %s = %s berhasil ditambahkan.\n", newEntry.Key, newEntry.Value)
		}
	}

	log.Println("✅ Seeding konfigurasi selesai.")
}
