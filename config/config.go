package config

import (
	"encoding/base64"
	"log"
	"os"
)

type AppConfig struct {
	Port         string
	AppEnv       string
	MongoString  string
	PasetoSecret string

	// Pengaturan SMTP untuk notifikasi email. Kosongkan SMTPHost untuk
	// menonaktifkan pengiriman email.
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	MailSender string
}

// LoadConfig membaca konfigurasi proses dari environment. File .env dimuat
// oleh main lewat godotenv sebelum fungsi ini dipanggil.
func LoadConfig() *AppConfig {
	// Default hanya untuk development; wajib diganti di production.
	secretBase64 := getEnv("PASETO_SECRET", "cGF5cm9sbC1rYXJ5YXdhbi1wYXNldG8tMzJieXRlcyE=")

	// Validasi panjang key sejak awal supaya tidak gagal saat login pertama
	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET di .env bukan string Base64 URL-encoded yang valid: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (setelah decode) harus tepat 32 byte. Panjang sekarang: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:         getEnv("PORT", "3000"),
		AppEnv:       getEnv("APP_ENV", "development"),
		MongoString:  getEnv("MONGOSTRING", ""),
		PasetoSecret: secretBase64,
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		MailSender:   getEnv("MAIL_SENDER", "no-reply@payroll-karyawan.local"),
	}
}

// Helper untuk mengambil environment variable dengan nilai default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
