package handlers

import (
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub001/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArsipHandler struct {
	db          *gorm.DB
	svc         *services.ArsipService
	permService *services.PermissionService
}

func NewArsipHandler(db *gorm.DB, svc *services.ArsipService) *ArsipHandler {
	return &ArsipHandler{
		db:          db,
		svc:         svc,
		permService: services.NewPermissionService(db),
	}
}

// ArchiveSurat - Arsipkan surat masuk/keluar. Surat masuk harus sudah
// didisposisikan, surat keluar harus sudah dikirim; satu surat hanya
// bisa diarsipkan sekali.
func (h *ArsipHandler) ArchiveSurat(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	canArchive, _ := h.permService.CanUserArchiveSurat(user)
	if !canArchive {
		return utils.Forbidden(c, "Anda tidak memiliki izin mengarsip surat")
	}

	var req letters.ArchiveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	arsip, err := h.svc.Archive(
		models.SuratType(req.SuratType),
		req.SuratID,
		user.ID,
		req.UnitKerja,
		req.LokasiFisik,
		req.Keterangan,
	)
	if err != nil {
		return HandleServiceError(c, err)
	}

	events.SuratEventBus <- events.SuratEvent{
		Type:  events.SuratDiarsipkan,
		Arsip: arsip,
	}

	return utils.Created(c, "Surat berhasil diarsipkan", letters.NewArsipResponse(arsip))
}

// UnarchiveSurat - Batalkan arsip; status surat kembali ke status
// sebelum diarsipkan.
func (h *ArsipHandler) UnarchiveSurat(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	canArchive, _ := h.permService.CanUserArchiveSurat(user)
	if !canArchive {
		return utils.Forbidden(c, "Anda tidak memiliki izin membatalkan arsip")
	}

	suratType := models.SuratType(c.Params("type"))
	if !suratType.IsValid() {
		return utils.BadRequest(c, "surat_type must be masuk or keluar", nil)
	}
	suratID, _ := c.ParamsInt("id")

	if err := h.svc.Unarchive(suratType, uint(suratID)); err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Arsip berhasil dibatalkan", nil)
}

// ListArsip - Daftar arsip dengan filter jenis surat dan unit kerja.
func (h *ArsipHandler) ListArsip(c *fiber.Ctx) error {
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

	filter := services.ArsipFilter{
		UnitKerja: c.Query("unit_kerja"),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if t := c.Query("surat_type"); t != "" {
		if !models.SuratType(t).IsValid() {
			return utils.BadRequest(c, "surat_type must be masuk or keluar", nil)
		}
		filter.SuratType = models.SuratType(t)
	}
	if tahun := c.QueryInt("tahun", 0); tahun > 0 {
		filter.ArchivedFrom = time.Date(tahun, 1, 1, 0, 0, 0, 0, time.Local)
		filter.ArchivedTo = filter.ArchivedFrom.AddDate(1, 0, 0)
	}

	items, err := h.svc.List(filter)
	if err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar arsip")
	}

	countQuery := h.db.Model(&models.Arsip{})
	if filter.SuratType != "" {
		countQuery = countQuery.Where("surat_type = ?", filter.SuratType)
	}
	if filter.UnitKerja != "" {
		countQuery = countQuery.Where("unit_kerja = ?", filter.UnitKerja)
	}
	if !filter.ArchivedFrom.IsZero() {
		countQuery = countQuery.Where("archived_at >= ? AND archived_at < ?", filter.ArchivedFrom, filter.ArchivedTo)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar arsip")
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "Daftar arsip", letters.NewArsipResponses(items), utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}
