package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type PositionHandler struct {
	positionRepo repository.PositionRepository
	userRepo     repository.UserRepository
}

func NewPositionHandler(positionRepo repository.PositionRepository, userRepo repository.UserRepository) *PositionHandler {
	return &PositionHandler{positionRepo: positionRepo, userRepo: userRepo}
}

// GetAllPositions godoc
// @Summary Ambil semua jabatan
// @Description Mengambil daftar jabatan beserta tarif per jamnya.
// @Tags Positions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Position
// @Failure 500 {object} models.ErrorResponse
// @Router /positions [get]
func (h *PositionHandler) GetAllPositions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	positions, err := h.positionRepo.GetAllPositions(ctx)
	if err != nil {
		log.Printf("Error mengambil jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}

	return c.Status(fiber.StatusOK).JSON(positions)
}

func (h *PositionHandler) GetPositionByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID jabatan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	position, err := h.positionRepo.FindPositionByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}
	if position == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(position)
}

// CreatePosition godoc
// @Summary Tambah jabatan baru
// @Description Membuat jabatan baru dengan tarif per jam. Nama jabatan harus unik.
// @Tags Positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PositionCreatePayload true "Data jabatan baru"
// @Success 201 {object} models.Position
// @Failure 400 {object} models.ErrorResponse "Validasi gagal atau nama jabatan sudah dipakai"
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *fiber.Ctx) error {
	var payload models.PositionCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.positionRepo.FindPositionByTitle(ctx, payload.Title)
	if err != nil {
		log.Printf("Error mencari jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama jabatan sudah dipakai"})
	}

	newPosition := &models.Position{
		Title:      payload.Title,
		HourlyRate: payload.HourlyRate,
	}

	if _, err := h.positionRepo.CreatePosition(ctx, newPosition); err != nil {
		log.Printf("Error membuat jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat jabatan"})
	}

	return c.Status(fiber.StatusCreated).JSON(newPosition)
}

func (h *PositionHandler) UpdatePosition(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID jabatan tidak valid"})
	}

	var payload models.PositionUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updateData := bson.M{}
	if payload.Title != nil {
		existing, err := h.positionRepo.FindPositionByTitle(ctx, *payload.Title)
		if err != nil {
			log.Printf("Error mencari jabatan: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
		}
		if existing != nil && existing.ID != objID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama jabatan sudah dipakai"})
		}
		updateData["title"] = *payload.Title
	}
	if payload.HourlyRate != nil {
		updateData["hourly_rate"] = *payload.HourlyRate
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diupdate"})
	}

	result, err := h.positionRepo.UpdatePosition(ctx, objID, updateData)
	if err != nil {
		log.Printf("Error mengupdate jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate jabatan"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jabatan berhasil diupdate"})
}

func (h *PositionHandler) DeletePosition(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID jabatan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	// Jabatan yang masih dipakai karyawan tidak boleh dihapus, gaji mereka
	// kehilangan tarif per jam kalau referensinya putus.
	count, err := h.userRepo.CountEmployeesWithPosition(ctx, objID)
	if err != nil {
		log.Printf("Error menghitung karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa karyawan"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jabatan masih dipakai oleh karyawan"})
	}

	result, err := h.positionRepo.DeletePosition(ctx, objID)
	if err != nil {
		log.Printf("Error menghapus jabatan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jabatan"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jabatan berhasil dihapus"})
}
