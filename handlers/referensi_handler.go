package handlers

import (
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReferensiHandler melayani CRUD data referensi (jabatan, jenis naskah,
// klasifikasi). Semua endpoint di sini diproteksi role admin di router.
type ReferensiHandler struct {
	db *gorm.DB
}

func NewReferensiHandler(db *gorm.DB) *ReferensiHandler {
	return &ReferensiHandler{db: db}
}

// --- Jabatan ---

type jabatanRequest struct {
	NamaJabatan   string `json:"nama_jabatan"`
	LevelHierarki int    `json:"level_hierarki"`
	KodeUK        string `json:"kode_uk"`
	IsActive      *bool  `json:"is_active"`
}

func (r *jabatanRequest) validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.NamaJabatan) == "" {
		errors["nama_jabatan"] = "nama_jabatan is required"
	}
	if !models.IsValidLevelHierarki(r.LevelHierarki) {
		errors["level_hierarki"] = "level_hierarki must be between 1 and 5"
	}
	return errors
}

func (h *ReferensiHandler) ListJabatan(c *fiber.Ctx) error {
	var items []models.Jabatan
	if err := h.db.Order("level_hierarki ASC, nama_jabatan ASC").Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar jabatan")
	}
	return utils.OK(c, "Daftar jabatan", items)
}

func (h *ReferensiHandler) CreateJabatan(c *fiber.Ctx) error {
	var req jabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	jabatan := models.Jabatan{
		NamaJabatan:   strings.TrimSpace(req.NamaJabatan),
		LevelHierarki: req.LevelHierarki,
		KodeUK:        strings.TrimSpace(req.KodeUK),
		IsActive:      true,
	}
	if req.IsActive != nil {
		jabatan.IsActive = *req.IsActive
	}

	if err := h.db.Create(&jabatan).Error; err != nil {
		return utils.InternalServerError(c, "Gagal membuat jabatan")
	}
	return utils.Created(c, "Jabatan berhasil dibuat", jabatan)
}

func (h *ReferensiHandler) UpdateJabatan(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	var jabatan models.Jabatan
	if err := h.db.First(&jabatan, id).Error; err != nil {
		return utils.NotFound(c, "Jabatan tidak ditemukan")
	}

	var req jabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	jabatan.NamaJabatan = strings.TrimSpace(req.NamaJabatan)
	jabatan.LevelHierarki = req.LevelHierarki
	jabatan.KodeUK = strings.TrimSpace(req.KodeUK)
	if req.IsActive != nil {
		jabatan.IsActive = *req.IsActive
	}

	if err := h.db.Save(&jabatan).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memperbarui jabatan")
	}
	return utils.OK(c, "Jabatan berhasil diperbarui", jabatan)
}

// --- Jenis Naskah ---

type kodeNamaRequest struct {
	Kode     string `json:"kode"`
	Nama     string `json:"nama"`
	IsActive *bool  `json:"is_active"`
}

func (r *kodeNamaRequest) validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Kode) == "" {
		errors["kode"] = "kode is required"
	}
	if strings.TrimSpace(r.Nama) == "" {
		errors["nama"] = "nama is required"
	}
	return errors
}

func (h *ReferensiHandler) ListJenisNaskah(c *fiber.Ctx) error {
	var items []models.JenisNaskah
	if err := h.db.Order("kode ASC").Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar jenis naskah")
	}
	return utils.OK(c, "Daftar jenis naskah", items)
}

func (h *ReferensiHandler) CreateJenisNaskah(c *fiber.Ctx) error {
	var req kodeNamaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	item := models.JenisNaskah{
		Kode:     strings.ToUpper(strings.TrimSpace(req.Kode)),
		Nama:     strings.TrimSpace(req.Nama),
		IsActive: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Create(&item).Error; err != nil {
		if services.IsDuplicateError(err) {
			return utils.Conflict(c, "Kode jenis naskah sudah dipakai")
		}
		return utils.InternalServerError(c, "Gagal membuat jenis naskah")
	}
	return utils.Created(c, "Jenis naskah berhasil dibuat", item)
}

func (h *ReferensiHandler) UpdateJenisNaskah(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	var item models.JenisNaskah
	if err := h.db.First(&item, id).Error; err != nil {
		return utils.NotFound(c, "Jenis naskah tidak ditemukan")
	}

	var req kodeNamaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	item.Kode = strings.ToUpper(strings.TrimSpace(req.Kode))
	item.Nama = strings.TrimSpace(req.Nama)
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Save(&item).Error; err != nil {
		if services.IsDuplicateError(err) {
			return utils.Conflict(c, "Kode jenis naskah sudah dipakai")
		}
		return utils.InternalServerError(c, "Gagal memperbarui jenis naskah")
	}
	return utils.OK(c, "Jenis naskah berhasil diperbarui", item)
}

// --- Klasifikasi ---

func (h *ReferensiHandler) ListKlasifikasi(c *fiber.Ctx) error {
	var items []models.Klasifikasi
	if err := h.db.Order("kode ASC").Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar klasifikasi")
	}
	return utils.OK(c, "Daftar klasifikasi", items)
}

func (h *ReferensiHandler) CreateKlasifikasi(c *fiber.Ctx) error {
	var req kodeNamaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	item := models.Klasifikasi{
		Kode:     strings.ToUpper(strings.TrimSpace(req.Kode)),
		Nama:     strings.TrimSpace(req.Nama),
		IsActive: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Create(&item).Error; err != nil {
		if services.IsDuplicateError(err) {
			return utils.Conflict(c, "Kode klasifikasi sudah dipakai")
		}
		return utils.InternalServerError(c, "Gagal membuat klasifikasi")
	}
	return utils.Created(c, "Klasifikasi berhasil dibuat", item)
}

func (h *ReferensiHandler) UpdateKlasifikasi(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	var item models.Klasifikasi
	if err := h.db.First(&item, id).Error; err != nil {
		return utils.NotFound(c, "Klasifikasi tidak ditemukan")
	}

	var req kodeNamaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if errMap := req.validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	item.Kode = strings.ToUpper(strings.TrimSpace(req.Kode))
	item.Nama = strings.TrimSpace(req.Nama)
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Save(&item).Error; err != nil {
		if services.IsDuplicateError(err) {
			return utils.Conflict(c, "Kode klasifikasi sudah dipakai")
		}
		return utils.InternalServerError(c, "Gagal memperbarui klasifikasi")
	}
	return utils.OK(c, "Klasifikasi berhasil diperbarui", item)
}
