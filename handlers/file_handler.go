package handlers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Payroll-Karyawan/config"
)

// FileHandler melayani download file dari GridFS (foto absensi, lampiran
// cuti, foto profil).
type FileHandler struct {
}

func NewFileHandler() *FileHandler {
	return &FileHandler{}
}

// saveFileToGridFS menyimpan file upload ke GridFS dan mengembalikan ID
// file dalam bentuk hex. ID inilah yang disimpan di dokumen absensi/cuti.
func saveFileToGridFS(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	bucket, err := config.GetGridFSBucket()
	if err != nil {
		return "", fmt.Errorf("gagal mengakses penyimpanan file: %w", err)
	}

	uniqueName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	fileID, err := bucket.UploadFromStream(uniqueName, src)
	if err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return fileID.Hex(), nil
}

// GetFile godoc
// @Summary Download File
// @Description Mengambil file dari penyimpanan berdasarkan ID
// @Tags Files
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {file} binary "Isi file"
// @Failure 400 {object} models.ErrorResponse "Format File ID tidak valid"
// @Failure 404 {object} models.ErrorResponse "File tidak ditemukan"
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	fileIDHex := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(fileIDHex)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format File ID tidak valid"})
	}

	bucket, err := config.GetGridFSBucket()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengakses penyimpanan file"})
	}

	downloadStream, err := bucket.OpenDownloadStream(objectID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File tidak ditemukan"})
	}
	defer downloadStream.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, downloadStream); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca data file"})
	}

	fileInfo := downloadStream.GetFile()

	contentType := http.DetectContentType(buf.Bytes())
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "inline; filename=\""+fileInfo.Name+"\"")

	return c.Send(buf.Bytes())
}
