package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Payroll-Karyawan/models"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type ConfigHandler struct {
	configRepo repository.ConfigRepository
}

func NewConfigHandler(configRepo repository.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{configRepo: configRepo}
}

// GetAllConfigs godoc
// @Summary Ambil semua konfigurasi
// @Description Mengambil seluruh entri konfigurasi runtime (geofence, tarif denda, rate BPJS).
// @Tags Config
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ConfigEntry
// @Failure 500 {object} models.ErrorResponse
// @Router /config [get]
func (h *ConfigHandler) GetAllConfigs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.configRepo.GetAllEntries(ctx)
	if err != nil {
		log.Printf("Error mengambil konfigurasi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil konfigurasi"})
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *ConfigHandler) GetConfigByKey(c *fiber.Ctx) error {
	key := c.Params("key")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.configRepo.FindEntryByKey(ctx, key)
	if err != nil {
		log.Printf("Error mengambil konfigurasi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil konfigurasi"})
	}
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Konfigurasi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

// UpsertConfig godoc
// @Summary Simpan konfigurasi
// @Description Membuat atau memperbarui satu entri konfigurasi berdasarkan key. Nilai baru langsung dipakai request berikutnya tanpa restart.
// @Tags Config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ConfigUpsertPayload true "Entri konfigurasi"
// @Success 200 {object} models.ConfigEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /config [post]
func (h *ConfigHandler) UpsertConfig(c *fiber.Ctx) error {
	var payload models.ConfigUpsertPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	entry := &models.ConfigEntry{
		Key:         payload.Key,
		Value:       payload.Value,
		Description: payload.Description,
	}

	if err := h.configRepo.UpsertEntry(ctx, entry); err != nil {
		log.Printf("Error menyimpan konfigurasi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan konfigurasi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Konfigurasi berhasil disimpan",
		"data":    entry,
	})
}

// BulkUpsertConfig menyimpan beberapa entri sekaligus, dipakai halaman
// pengaturan di frontend yang mengirim semua field dalam satu kali simpan.
func (h *ConfigHandler) BulkUpsertConfig(c *fiber.Ctx) error {
	var payload models.ConfigBulkPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	for _, item := range payload.Entries {
		entry := &models.ConfigEntry{
			Key:         item.Key,
			Value:       item.Value,
			Description: item.Description,
		}
		if err := h.configRepo.UpsertEntry(ctx, entry); err != nil {
			log.Printf("Error menyimpan konfigurasi %s: %v", item.Key, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan konfigurasi"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Konfigurasi berhasil disimpan",
		"count":   len(payload.Entries),
	})
}

func (h *ConfigHandler) DeleteConfig(c *fiber.Ctx) error {
	key := c.Params("key")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.configRepo.DeleteEntry(ctx, key)
	if err != nil {
		log.Printf("Error menghapus konfigurasi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus konfigurasi"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Konfigurasi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Konfigurasi berhasil dihapus"})
}
