package handlers

import (
	"path/filepath"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/utils"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
)

// UploadFileHandler - Upload lampiran surat (PDF/gambar) ke object storage,
// balas key-nya untuk dipakai saat registrasi surat.
func UploadFileHandler(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "File upload error", nil)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".jpg" && ext != ".png" && ext != ".jpeg" {
		return utils.BadRequest(c, "Hanya file PDF dan Gambar yang diperbolehkan", nil)
	}

	filename := storage.ObjectKey("lampiran", ext)

	uploadedPath, err := storage.UploadFile(c.Context(), fileHeader, filename)
	if err != nil {
		return utils.InternalServerError(c, "Gagal mengupload ke storage")
	}

	return utils.OK(c, "File uploaded successfully", fiber.Map{
		"file_path": uploadedPath,
	})
}

// GetFileURL - Tukar key file dengan presigned URL untuk diunduh.
func GetFileURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if strings.TrimSpace(key) == "" {
		return utils.BadRequest(c, "key is required", nil)
	}

	url, err := storage.GetPresignedURL(key)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat URL unduhan")
	}

	return utils.OK(c, "Presigned URL", fiber.Map{
		"url": url,
	})
}
