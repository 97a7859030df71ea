package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GenerateBase64Key menghasilkan key acak 32 byte dalam bentuk base64
// URL-encoded, dipakai untuk mengisi PASETO_SECRET.
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local requires a 32-byte key")
	}

	key := make([]byte, size)
	_, err := rand.Read(key)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

// ParsePagination membaca query page dan limit dengan nilai default dan
// batas atas supaya query listing tidak kebablasan.
func ParsePagination(c *fiber.Ctx) (page int64, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
