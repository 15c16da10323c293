package services

import (
	"errors"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

// SuratMasukService memegang siklus hidup surat masuk:
// diterima -> dibaca -> didisposisikan -> diarsipkan, dengan lompatan
// diterima -> didisposisikan diizinkan. Transisi di luar daftar selalu
// ditolak dengan InvalidTransitionError; tidak ada transisi diam-diam.
type SuratMasukService struct {
	db        *gorm.DB
	numbering *NumberingService
}

func NewSuratMasukService(db *gorm.DB, numbering *NumberingService) *SuratMasukService {
	return &SuratMasukService{db: db, numbering: numbering}
}

// Register mencatat surat masuk baru: dokumen diberi nomor dan disimpan
// bersama pembungkus surat masuk dalam satu transaksi.
func (s *SuratMasukService) Register(doc *models.Document, sm *models.SuratMasuk) error {
	var penerima models.User
	if err := s.db.First(&penerima, sm.PenerimaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	_, _, err := s.numbering.Generate(doc, func(tx *gorm.DB) error {
		sm.ID = 0
		sm.DocumentID = doc.ID
		sm.Status = models.MasukDiterima
		sm.ReadAt = nil
		sm.ReadBy = nil
		return tx.Create(sm).Error
	})
	return err
}

// Get memuat satu surat masuk beserta dokumen dan penerimanya.
func (s *SuratMasukService) Get(id uint) (*models.SuratMasuk, error) {
	var sm models.SuratMasuk
	err := s.db.
		Preload("Document").
		Preload("Document.JenisNaskah").
		Preload("Document.Klasifikasi").
		Preload("Penerima").
		First(&sm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sm, nil
}

// MarkRead menandai surat terbaca. Idempoten: surat yang sudah dibaca
// (atau sudah lewat tahap itu) dikembalikan apa adanya tanpa error.
func (s *SuratMasukService) MarkRead(suratID, userID uint) (*models.SuratMasuk, error) {
	sm, err := s.Get(suratID)
	if err != nil {
		return nil, err
	}
	if sm.SudahDibaca() {
		return sm, nil
	}

	now := time.Now()
	res := s.db.Model(&models.SuratMasuk{}).
		Where("id = ? AND status = ?", suratID, models.MasukDiterima).
		Updates(map[string]any{
			"status":  models.MasukDibaca,
			"read_at": &now,
			"read_by": &userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	// RowsAffected 0 berarti kalah balapan dengan MarkRead/disposisi lain;
	// dua-duanya bukan error untuk operasi idempoten ini.
	return s.Get(suratID)
}

// MarkUnread mengembalikan surat berstatus dibaca ke diterima dan
// menghapus penanda baca. Status lain ditolak: disposisi dan arsip
// bersifat monoton.
func (s *SuratMasukService) MarkUnread(suratID uint) (*models.SuratMasuk, error) {
	sm, err := s.Get(suratID)
	if err != nil {
		return nil, err
	}
	if sm.Status != models.MasukDibaca {
		return nil, &InvalidTransitionError{Status: string(sm.Status), Action: "mark_unread"}
	}

	res := s.db.Model(&models.SuratMasuk{}).
		Where("id = ? AND status = ?", suratID, models.MasukDibaca).
		Updates(map[string]any{
			"status":  models.MasukDiterima,
			"read_at": nil,
			"read_by": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Status berubah di antara cek dan update.
		cur, err := s.Get(suratID)
		if err != nil {
			return nil, err
		}
		return nil, &InvalidTransitionError{Status: string(cur.Status), Action: "mark_unread"}
	}
	return s.Get(suratID)
}
