package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/password"
	"Sistem-Payroll-Karyawan/repository"
)

func SeedUsers(userRepo repository.UserRepository, positionRepo repository.PositionRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := password.HashPassword("Password123")
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	// =======================================================
	// Data untuk Admin
	// =======================================================
	adminEmail := "admin.utama@gmail.com"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("✅ User admin sudah ada, seeding user admin dilewati.")
	} else {
		log.Println("🔄 Menambahkan user Admin...")
		newAdmin := &models.User{
			Name:     "Admin Utama",
			Email:    adminEmail,
			Password: hashedPassword,
			Role:     "admin",
			Phone:    "081100000001",
			Address:  "Jl. Administrasi No. 1, Palembang",
			JoinDate: "2022-01-03",
			Status:   "active",
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("❌ Gagal menyimpan user admin: %v\n", err)
		} else {
			fmt.Printf("✔ User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	allPositions, err := positionRepo.GetAllPositions(ctx)
	if err != nil {
		log.Fatalf("❌ Gagal mengambil daftar jabatan: %v", err)
	}
	if len(allPositions) == 0 {
		log.Println("⚠️ Tidak ada jabatan ditemukan. Harap pastikan jabatan di-seed terlebih dahulu.")
		return
	}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Sri", "Rina", "Andi", "Nur", "Hadi", "Kartika", "Eko", "Maya", "Dian", "Fajar", "Indra", "Putri", "Rizky", "Tia", "Wisnu"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Kusumo", "Handayani", "Pratama", "Saputra", "Lestari", "Setiawan", "Aditya", "Wulandari", "Maulana"}
	streets := []string{"Jl. Sudirman", "Jl. Demang Lebar Daun", "Jl. Kapten A. Rivai", "Jl. Veteran", "Jl. Basuki Rahmat"}

	log.Println("🔄 Menambahkan 10 user Karyawan...")
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("karyawan%02d@gmail.com", i)
		existingUser, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		position := allPositions[rand.Intn(len(allPositions))]
		positionID := position.ID

		joinDate := time.Now().AddDate(0, -rand.Intn(36), -rand.Intn(28)).Format("2006-01-02")
		address := fmt.Sprintf("%s No. %d, Palembang", streets[rand.Intn(len(streets))], rand.Intn(100)+1)

		newKaryawan := &models.User{
			Name:       fullName,
			Email:      email,
			Password:   hashedPassword,
			Role:       "employee",
			Phone:      fmt.Sprintf("0812%08d", rand.Intn(100000000)),
			Address:    address,
			JoinDate:   joinDate,
			Status:     "active",
			PositionID: &positionID,
		}

		if _, err := userRepo.CreateUser(ctx, newKaryawan); err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", newKaryawan.Name, err)
		} else {
			fmt.Printf("✔ User %s (%s) berhasil ditambahkan.\n", newKaryawan.Name, position.Title)
		}
	}

	log.Println("✅ Seeding user selesai.")
}
