package handlers

import (
	"github.com/Ahadan1/SIPAS-Public-sub001/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub001/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DisposisiHandler struct {
	db  *gorm.DB
	svc *services.DisposisiService
}

func NewDisposisiHandler(db *gorm.DB, svc *services.DisposisiService) *DisposisiHandler {
	return &DisposisiHandler{db: db, svc: svc}
}

// CreateDisposisi - Pejabat meneruskan surat masuk ke bawahan atau rekan
// selevel. Validasi hierarki dan visibilitas rantai dilakukan di service.
func (h *DisposisiHandler) CreateDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")

	var req letters.CreateDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	d, err := h.svc.Create(user.ID, uint(suratID), req.PenerimaID, req.Instruksi, req.Catatan)
	if err != nil {
		return HandleServiceError(c, err)
	}

	events.SuratEventBus <- events.SuratEvent{
		Type:      events.DisposisiDibuat,
		Disposisi: d,
	}

	return utils.Created(c, "Disposisi berhasil dibuat", letters.NewDisposisiResponse(d))
}

// UpdateDisposisi - Pengirim mengubah instruksi/catatan. Ditolak begitu
// penerima sudah meneruskan surat lebih jauh.
func (h *DisposisiHandler) UpdateDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	disposisiID, _ := c.ParamsInt("id")

	var req letters.UpdateDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	d, err := h.svc.Update(uint(disposisiID), user.ID, req.Instruksi, req.Catatan)
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Disposisi berhasil diperbarui", letters.NewDisposisiResponse(d))
}

// DeleteDisposisi - Pengirim menarik kembali disposisi yang belum
// ditindaklanjuti penerima.
func (h *DisposisiHandler) DeleteDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	disposisiID, _ := c.ParamsInt("id")
	if err := h.svc.Delete(uint(disposisiID), user.ID); err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Disposisi berhasil dihapus", nil)
}

// ListDisposisi - Riwayat disposisi satu surat masuk, urut kronologis.
func (h *DisposisiHandler) ListDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	suratID, _ := c.ParamsInt("id")

	// Admin dan tata usaha melihat semua rantai; pejabat hanya surat yang
	// sampai kepadanya.
	if user.IsAdmin() || user.IsTataUsaha() {
		var items []models.Disposisi
		err := h.db.
			Preload("Pengirim").
			Preload("Penerima").
			Where("surat_masuk_id = ?", suratID).
			Order("created_at ASC").
			Find(&items).Error
		if err != nil {
			return utils.InternalServerError(c, "Gagal mengambil riwayat disposisi")
		}
		return utils.OK(c, "Riwayat disposisi", letters.NewDisposisiResponses(items))
	}

	items, err := h.svc.ListForSurat(user.ID, uint(suratID))
	if err != nil {
		return HandleServiceError(c, err)
	}

	return utils.OK(c, "Riwayat disposisi", letters.NewDisposisiResponses(items))
}
