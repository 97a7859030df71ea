package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/paseto"
	"Sistem-Payroll-Karyawan/pkg/password"
	util "Sistem-Payroll-Karyawan/pkg/utils"
	"Sistem-Payroll-Karyawan/repository"
)

type UserHandler struct {
	userRepo     repository.UserRepository
	positionRepo repository.PositionRepository
}

func NewUserHandler(userRepo repository.UserRepository, positionRepo repository.PositionRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, positionRepo: positionRepo}
}

// GetAllUsers godoc
// @Summary Ambil semua karyawan
// @Description Mengambil daftar karyawan beserta jabatannya, dengan pagination dan filter role/status.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Nomor halaman (default 1)"
// @Param limit query int false "Jumlah data per halaman (default 10)"
// @Param role query string false "Filter berdasarkan role (admin / employee)"
// @Param status query string false "Filter berdasarkan status (active / inactive)"
// @Success 200 {object} object{data=[]models.UserWithPosition,total=int,page=int,limit=int}
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page, limit := util.ParsePagination(c)

	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.userRepo.GetAllUsers(ctx, filter, page, limit)
	if err != nil {
		log.Printf("Error mengambil data karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUserByID godoc
// @Summary Ambil detail karyawan
// @Description Mengambil satu karyawan berdasarkan ID. Karyawan hanya bisa melihat datanya sendiri, admin bisa melihat semua.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 403 {object} models.ErrorResponse "Akses ditolak"
// @Failure 404 {object} models.ErrorResponse "Karyawan tidak ditemukan"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	if claims.Role != "admin" && claims.UserID != objID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetMe godoc
// @Summary Profil saya
// @Description Mengambil profil karyawan yang sedang login.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse "Karyawan tidak ditemukan"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		log.Printf("Error mengambil profil: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil profil"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser godoc
// @Summary Tambah karyawan baru
// @Description Mendaftarkan karyawan baru. Hanya bisa dilakukan oleh admin.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UserCreatePayload true "Data karyawan baru"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Validasi gagal atau email sudah terdaftar"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var payload models.UserCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	status := payload.Status
	if status == "" {
		status = "active"
	}

	newUser := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     payload.Role,
		Phone:    payload.Phone,
		Address:  payload.Address,
		JoinDate: payload.JoinDate,
		Status:   status,
	}

	if payload.PositionID != "" {
		positionID, err := primitive.ObjectIDFromHex(payload.PositionID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format position_id tidak valid"})
		}

		position, err := h.positionRepo.FindPositionByID(ctx, positionID)
		if err != nil {
			log.Printf("Error mencari jabatan: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
		}
		if position == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
		}
		newUser.PositionID = &positionID
	}

	if _, err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newUser)
}

// UpdateUser godoc
// @Summary Update karyawan
// @Description Memperbarui sebagian field karyawan. Field yang tidak dikirim tidak diubah.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Param payload body models.UserUpdatePayload true "Field yang diubah"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Karyawan tidak ditemukan"
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("Error mengambil karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	updateData := bson.M{}
	if payload.Name != nil {
		updateData["name"] = *payload.Name
	}
	if payload.Email != nil {
		updateData["email"] = *payload.Email
	}
	if payload.Password != nil {
		hashedPassword, err := password.HashPassword(*payload.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
		}
		updateData["password"] = hashedPassword
	}
	if payload.Role != nil {
		updateData["role"] = *payload.Role
	}
	if payload.Phone != nil {
		updateData["phone"] = *payload.Phone
	}
	if payload.Address != nil {
		updateData["address"] = *payload.Address
	}
	if payload.JoinDate != nil {
		updateData["join_date"] = *payload.JoinDate
	}
	if payload.Status != nil {
		updateData["status"] = *payload.Status
	}
	if payload.PositionID != nil {
		if *payload.PositionID == "" {
			updateData["position_id"] = nil
		} else {
			positionID, err := primitive.ObjectIDFromHex(*payload.PositionID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format position_id tidak valid"})
			}

			position, err := h.positionRepo.FindPositionByID(ctx, positionID)
			if err != nil {
				log.Printf("Error mencari jabatan: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
			}
			if position == nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
			}
			updateData["position_id"] = positionID
		}
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diupdate"})
	}

	if _, err := h.userRepo.UpdateUser(ctx, objID, updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Karyawan berhasil diupdate"})
}

// DeleteUser godoc
// @Summary Hapus karyawan
// @Description Menghapus karyawan berdasarkan ID. Hanya bisa dilakukan oleh admin.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Karyawan tidak ditemukan"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.DeleteUser(ctx, objID)
	if err != nil {
		log.Printf("Error menghapus karyawan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Karyawan berhasil dihapus"})
}

// UploadPhoto menyimpan foto profil ke GridFS lalu menempelkan ID file-nya
// ke dokumen karyawan.
func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	if claims.Role != "admin" && claims.UserID != objID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File foto wajib diunggah"})
	}

	photoID, err := saveFileToGridFS(fileHeader)
	if err != nil {
		log.Printf("Error menyimpan foto profil: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan foto"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.userRepo.UpdateUser(ctx, objID, bson.M{"photo": photoID}); err != nil {
		log.Printf("Error mengupdate foto profil: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate foto profil"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Foto profil berhasil diupdate",
		"photo":   photoID,
	})
}
