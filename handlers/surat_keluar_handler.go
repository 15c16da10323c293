package handlers

import (
	"path/filepath"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub001/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/events"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SuratKeluarHandler struct {
	db          *gorm.DB
	svc         *services.SuratKeluarService
	permService *services.PermissionService
}

func NewSuratKeluarHandler(db *gorm.DB, svc *services.SuratKeluarService) *SuratKeluarHandler {
	return &SuratKeluarHandler{
		db:          db,
		svc:         svc,
		permService: services.NewPermissionService(db),
	}
}

// CreateSuratKeluar - Tata usaha mencatat draf surat keluar. Nomor surat
// langsung diberikan saat registrasi; draf yang dibatalkan meninggalkan
// lubang nomor dan itu disengaja.
func (h *SuratKeluarHandler) CreateSuratKeluar(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// 1. Parsing Form Data (DTO)
	var req letters.CreateSuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}

	// 2. Validasi Input
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	// 3. Cek Permission
	canCreate, _ := h.permService.CanUserRegisterSurat(user)
	if !canCreate {
		return utils.Forbidden(c, "Anda tidak memiliki izin mencatat surat keluar")
	}

	// 4. Handle File Upload (opsional selama masih draf)
	filePath := ""
	if fileHeader, err := c.FormFile("file"); err == nil {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
			return utils.BadRequest(c, "Format file harus PDF atau dokumen Word", nil)
		}

		filename := storage.ObjectKey("keluar", ext)
		uploadedPath, err := storage.UploadFile(c.Context(), fileHeader, filename)
		if err != nil {
			return utils.InternalServerError(c, "Gagal mengupload file ke server")
		}
		filePath = uploadedPath
	}

	// 5. Mapping ke Model + registrasi
	doc := req.ToDocument(user.ID)
	doc.FilePath = filePath
	sk := req.ToSuratKeluar()

	if err := h.svc.Register(doc, sk, req.TujuanIDs); err != nil {
		return HandleServiceError(c, err)
	}

	registered, err := h.svc.Get(sk.ID)
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.Created(c, "Draf surat keluar berhasil dicatat", letters.NewSuratKeluarResponse(registered))
}

// GetSuratKeluar - Detail surat keluar.
func (h *SuratKeluarHandler) GetSuratKeluar(c *fiber.Ctx) error {
	if _, err := middleware.GetUserFromContext(c); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")
	sk, err := h.svc.Get(uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Detail surat keluar", letters.NewSuratKeluarResponse(sk))
}

// KirimSuratKeluar - Kirim draf surat keluar. Hanya draf yang bisa
// dikirim; pengiriman ulang ditolak.
func (h *SuratKeluarHandler) KirimSuratKeluar(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	canSend, _ := h.permService.CanUserRegisterSurat(user)
	if !canSend {
		return utils.Forbidden(c, "Anda tidak memiliki izin mengirim surat keluar")
	}

	suratID, _ := c.ParamsInt("id")
	sent, err := h.svc.Send(uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	events.SuratEventBus <- events.SuratEvent{
		Type:        events.SuratKeluarDikirim,
		SuratKeluar: sent,
	}

	return utils.OK(c, "Surat keluar berhasil dikirim", letters.NewSuratKeluarResponse(sent))
}

// ListSuratKeluar - Daftar surat keluar dengan filter status dan pagination.
func (h *SuratKeluarHandler) ListSuratKeluar(c *fiber.Ctx) error {
	if _, err := middleware.GetUserFromContext(c); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.db.Model(&models.SuratKeluar{}).
		Preload("Document").
		Preload("Document.JenisNaskah").
		Preload("Document.Klasifikasi").
		Preload("Tujuan")

	if status := c.Query("status"); status != "" {
		if !models.StatusSuratKeluar(status).IsValid() {
			return utils.BadRequest(c, "Status tidak dikenal", nil)
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar surat")
	}

	var items []models.SuratKeluar
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar surat")
	}

	resp := make([]letters.SuratKeluarResponse, 0, len(items))
	for i := range items {
		resp = append(resp, letters.NewSuratKeluarResponse(&items[i]))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "Daftar surat keluar", resp, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}
