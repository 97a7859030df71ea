package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/repository"
)

func SeedPositions(positionRepo repository.PositionRepository) {
	log.Println("🌱 Memulai seeding jabatan...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	positions := []models.Position{
		{Title: "Software Engineer", HourlyRate: 30000},
		{Title: "Backend Developer", HourlyRate: 27000},
		{Title: "Frontend Developer", HourlyRate: 25000},
		{Title: "Akuntan", HourlyRate: 22000},
		{Title: "HR Specialist", HourlyRate: 20000},
		{Title: "Marketing Specialist", HourlyRate: 18000},
		{Title: "Customer Service", HourlyRate: 15000},
		{Title: "Staf Administrasi", HourlyRate: 15000},
	}

	for _, position := range positions {
		existing, err := positionRepo.FindPositionByTitle(ctx, position.Title)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: Jabatan %s sudah ada.\n", position.Title)
			continue
		}

		newPosition := position
		if _, err := positionRepo.CreatePosition(ctx, &newPosition); err != nil {
			log.Printf("❌ Gagal menyimpan jabatan %s: %v\n", position.Title, err)
		} else {
			fmt.Printf("✔ Jabatan %s (Rp %.0f/jam) berhasil ditambahkan.\n", newPosition.Title, newPosition.HourlyRate)
		}
	}

	log.Println("✅ Seeding jabatan selesai.")
}
