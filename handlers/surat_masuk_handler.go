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

type SuratMasukHandler struct {
	db          *gorm.DB
	svc         *services.SuratMasukService
	permService *services.PermissionService
}

func NewSuratMasukHandler(db *gorm.DB, svc *services.SuratMasukService) *SuratMasukHandler {
	return &SuratMasukHandler{
		db:          db,
		svc:         svc,
		permService: services.NewPermissionService(db),
	}
}

// CreateSuratMasuk - Tata usaha mencatat surat masuk; nomor agenda
// diberikan atomik saat registrasi.
func (h *SuratMasukHandler) CreateSuratMasuk(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// 1. Parsing Form Data (DTO)
	var req letters.CreateSuratMasukRequest
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
		return utils.Forbidden(c, "Anda tidak memiliki izin mencatat surat masuk")
	}

	// 4. Handle File Upload (opsional untuk surat masuk tanpa lampiran digital)
	filePath := ""
	if fileHeader, err := c.FormFile("file"); err == nil {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".pdf" && ext != ".jpg" && ext != ".png" && ext != ".jpeg" {
			return utils.BadRequest(c, "Format file harus PDF atau Gambar", nil)
		}

		filename := storage.ObjectKey("masuk", ext)
		uploadedPath, err := storage.UploadFile(c.Context(), fileHeader, filename)
		if err != nil {
			return utils.InternalServerError(c, "Gagal mengupload file ke server")
		}
		filePath = uploadedPath
	}

	// 5. Mapping ke Model + registrasi (penomoran + insert satu transaksi)
	doc := req.ToDocument(user.ID)
	doc.FilePath = filePath
	sm := req.ToSuratMasuk()

	if err := h.svc.Register(doc, sm); err != nil {
		return HandleServiceError(c, err)
	}

	registered, err := h.svc.Get(sm.ID)
	if err != nil {
		return HandleServiceError(c, err)
	}

	// 6. Kirim Notifikasi
	events.SuratEventBus <- events.SuratEvent{
		Type:       events.SuratMasukDicatat,
		SuratMasuk: registered,
	}

	return utils.Created(c, "Surat masuk berhasil dicatat", letters.NewSuratMasukResponse(registered))
}

// GetSuratMasuk - Detail surat masuk; pejabat hanya bisa melihat surat
// yang sampai kepadanya lewat rantai disposisi.
func (h *SuratMasukHandler) GetSuratMasuk(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")
	sm, err := h.svc.Get(uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	canView, err := h.permService.CanUserViewSuratMasuk(user, sm)
	if err != nil {
		return HandleServiceError(c, err)
	}
	if !canView {
		return utils.Forbidden(c, "Anda tidak berhak melihat surat ini")
	}

	return utils.OK(c, "Detail surat masuk", letters.NewSuratMasukResponse(sm))
}

// MarkRead - Tandai surat masuk sudah dibaca. Idempoten: surat yang
// sudah lewat status diterima tidak berubah.
func (h *SuratMasukHandler) MarkRead(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")
	sm, err := h.svc.Get(uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	canView, err := h.permService.CanUserViewSuratMasuk(user, sm)
	if err != nil {
		return HandleServiceError(c, err)
	}
	if !canView {
		return utils.Forbidden(c, "Anda tidak berhak melihat surat ini")
	}

	updated, err := h.svc.MarkRead(sm.ID, user.ID)
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Surat ditandai sudah dibaca", letters.NewSuratMasukResponse(updated))
}

// MarkUnread - Kembalikan surat dari dibaca ke diterima. Hanya sah
// selama belum didisposisikan.
func (h *SuratMasukHandler) MarkUnread(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")
	sm, err := h.svc.Get(uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	canView, err := h.permService.CanUserViewSuratMasuk(user, sm)
	if err != nil {
		return HandleServiceError(c, err)
	}
	if !canView {
		return utils.Forbidden(c, "Anda tidak berhak melihat surat ini")
	}

	updated, err := h.svc.MarkUnread(sm.ID)
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Surat ditandai belum dibaca", letters.NewSuratMasukResponse(updated))
}

// ListSuratMasuk - Daftar surat masuk dengan filter status dan pagination.
// Pejabat hanya melihat surat yang diterimanya atau yang sampai lewat
// disposisi.
func (h *SuratMasukHandler) ListSuratMasuk(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
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

	query := h.db.Model(&models.SuratMasuk{}).
		Preload("Document").
		Preload("Document.JenisNaskah").
		Preload("Document.Klasifikasi").
		Preload("Penerima")

	if status := c.Query("status"); status != "" {
		if !models.StatusSuratMasuk(status).IsValid() {
			return utils.BadRequest(c, "Status tidak dikenal", nil)
		}
		query = query.Where("status = ?", status)
	}

	if user.IsPejabat() {
		query = query.Where(
			"penerima_id = ? OR id IN (?)",
			user.ID,
			h.db.Model(&models.Disposisi{}).
				Select("surat_masuk_id").
				Where("pengirim_id = ? OR penerima_id = ?", user.ID, user.ID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar surat")
	}

	var items []models.SuratMasuk
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar surat")
	}

	resp := make([]letters.SuratMasukResponse, 0, len(items))
	for i := range items {
		resp = append(resp, letters.NewSuratMasukResponse(&items[i]))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "Daftar surat masuk", resp, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}
