package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

// ArsipService menautkan surat ke entri arsip. Satu surat maksimal satu
// entri seumur hidup (unique index surat_type+surat_id sebagai pengaman),
// dan arsip hanya boleh setelah surat mencapai status operasional
// terakhirnya: didisposisikan untuk masuk, dikirim untuk keluar.
type ArsipService struct {
	db *gorm.DB
}

func NewArsipService(db *gorm.DB) *ArsipService {
	return &ArsipService{db: db}
}

// ArsipFilter menyaring hasil List. Paginasi milik lapisan HTTP.
type ArsipFilter struct {
	SuratType models.SuratType
	UnitKerja string

	// Rentang waktu pengarsipan; nol berarti tanpa batas.
	ArchivedFrom time.Time
	ArchivedTo   time.Time

	Limit  int
	Offset int
}

// Archive membuat entri arsip dan menggeser status surat ke diarsipkan
// dalam satu transaksi; dua-duanya tersimpan atau dua-duanya batal.
func (s *ArsipService) Archive(suratType models.SuratType, suratID, archivedBy uint, unitKerja, lokasiFisik, keterangan string) (*models.Arsip, error) {
	if !suratType.IsValid() {
		return nil, fmt.Errorf("surat type %q: %w", suratType, ErrNotFound)
	}

	var entry *models.Arsip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Cek entri lama dulu: arsip kedua harus gagal sebagai "sudah
		// diarsipkan", bukan sebagai salah status.
		var n int64
		err := tx.Model(&models.Arsip{}).
			Where("surat_type = ? AND surat_id = ?", suratType, suratID).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyArchived
		}

		if err := flipStatusForArchive(tx, suratType, suratID); err != nil {
			return err
		}

		entry = &models.Arsip{
			SuratType:    suratType,
			SuratID:      suratID,
			UnitKerja:    unitKerja,
			LokasiFisik:  lokasiFisik,
			Keterangan:   keterangan,
			ArchivedByID: archivedBy,
			ArchivedAt:   time.Now(),
		}
		if err := tx.Create(entry).Error; err != nil {
			if IsDuplicateError(err) {
				return ErrAlreadyArchived
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Unarchive menghapus entri arsip dan mengembalikan surat ke status
// layak-arsipnya semula.
func (s *ArsipService) Unarchive(suratType models.SuratType, suratID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.Arsip
		err := tx.Where("surat_type = ? AND surat_id = ?", suratType, suratID).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("arsip %s/%d: %w", suratType, suratID, ErrNotFound)
			}
			return err
		}
		if err := tx.Unscoped().Delete(&entry).Error; err != nil {
			return err
		}
		return revertStatusFromArchive(tx, suratType, suratID)
	})
}

// List mengembalikan entri arsip sesuai filter, terbaru dahulu.
func (s *ArsipService) List(filter ArsipFilter) ([]models.Arsip, error) {
	q := s.db.Model(&models.Arsip{}).Preload("ArchivedBy")
	if filter.SuratType != "" {
		q = q.Where("surat_type = ?", filter.SuratType)
	}
	if filter.UnitKerja != "" {
		q = q.Where("unit_kerja = ?", filter.UnitKerja)
	}
	if !filter.ArchivedFrom.IsZero() {
		q = q.Where("archived_at >= ?", filter.ArchivedFrom)
	}
	if !filter.ArchivedTo.IsZero() {
		q = q.Where("archived_at < ?", filter.ArchivedTo)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var list []models.Arsip
	err := q.Order("archived_at DESC").Find(&list).Error
	return list, err
}

// flipStatusForArchive memindahkan surat ke diarsipkan dengan guard
// status pada klausa WHERE, lalu menerjemahkan kegagalan 0-baris menjadi
// error transisi yang menyebut status sebenarnya.
func flipStatusForArchive(tx *gorm.DB, suratType models.SuratType, suratID uint) error {
	switch suratType {
	case models.SuratTypeMasuk:
		var sm models.SuratMasuk
		if err := tx.First(&sm, suratID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("surat masuk %d: %w", suratID, ErrNotFound)
			}
			return err
		}
		res := tx.Model(&models.SuratMasuk{}).
			Where("id = ? AND status = ?", suratID, models.MasukDidisposisikan).
			Update("status", models.MasukDiarsipkan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidTransitionError{Status: string(sm.Status), Action: "arsip"}
		}
		return nil

	case models.SuratTypeKeluar:
		var sk models.SuratKeluar
		if err := tx.First(&sk, suratID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("surat keluar %d: %w", suratID, ErrNotFound)
			}
			return err
		}
		res := tx.Model(&models.SuratKeluar{}).
			Where("id = ? AND status = ?", suratID, models.KeluarDikirim).
			Update("status", models.KeluarDiarsipkan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidTransitionError{Status: string(sk.Status), Action: "arsip"}
		}
		return nil
	}
	return fmt.Errorf("surat type %q: %w", suratType, ErrNotFound)
}

func revertStatusFromArchive(tx *gorm.DB, suratType models.SuratType, suratID uint) error {
	switch suratType {
	case models.SuratTypeMasuk:
		res := tx.Model(&models.SuratMasuk{}).
			Where("id = ? AND status = ?", suratID, models.MasukDiarsipkan).
			Update("status", models.MasukDidisposisikan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidTransitionError{Status: "bukan diarsipkan", Action: "unarsip"}
		}
		return nil
	case models.SuratTypeKeluar:
		res := tx.Model(&models.SuratKeluar{}).
			Where("id = ? AND status = ?", suratID, models.KeluarDiarsipkan).
			Update("status", models.KeluarDikirim)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidTransitionError{Status: "bukan diarsipkan", Action: "unarsip"}
		}
		return nil
	}
	return fmt.Errorf("surat type %q: %w", suratType, ErrNotFound)
}
