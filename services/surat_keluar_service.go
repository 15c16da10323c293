package services

import (
	"errors"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

// SuratKeluarService memegang siklus hidup surat keluar:
// draf -> dikirim -> diarsipkan, maju saja, tiap transisi eksplisit.
type SuratKeluarService struct {
	db        *gorm.DB
	numbering *NumberingService
}

func NewSuratKeluarService(db *gorm.DB, numbering *NumberingService) *SuratKeluarService {
	return &SuratKeluarService{db: db, numbering: numbering}
}

// Register membuat draf surat keluar. Dokumen langsung diberi nomor di
// sini (nomor melekat sekali saat registrasi dan tidak berubah), jadi
// syarat kirim "nomor sudah ada" otomatis terpenuhi untuk surat yang
// lahir lewat jalur ini. tujuanIDs adalah penerima internal; duplikat
// di daftar ditolak oleh PK gabungan tabel surat_keluar_tujuan.
func (s *SuratKeluarService) Register(doc *models.Document, sk *models.SuratKeluar, tujuanIDs []uint) error {
	if len(tujuanIDs) > 0 {
		var n int64
		if err := s.db.Model(&models.User{}).Where("id IN ?", tujuanIDs).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(tujuanIDs)) {
			return ErrNotFound
		}
	}

	_, _, err := s.numbering.Generate(doc, func(tx *gorm.DB) error {
		sk.ID = 0
		sk.DocumentID = doc.ID
		sk.Status = models.KeluarDraf
		sk.TanggalKirim = nil
		if err := tx.Create(sk).Error; err != nil {
			return err
		}
		for _, uid := range tujuanIDs {
			if err := tx.Exec(
				"INSERT INTO surat_keluar_tujuan (surat_keluar_id, user_id) VALUES (?, ?)",
				sk.ID, uid,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// Get memuat satu surat keluar beserta dokumen dan daftar tujuannya.
func (s *SuratKeluarService) Get(id uint) (*models.SuratKeluar, error) {
	var sk models.SuratKeluar
	err := s.db.
		Preload("Document").
		Preload("Document.JenisNaskah").
		Preload("Document.Klasifikasi").
		Preload("Tujuan").
		First(&sk, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sk, nil
}

// Send mengirim draf: hanya dari status draf, dan dokumen harus sudah
// bernomor. Tanggal kirim dicap saat transisi.
func (s *SuratKeluarService) Send(suratID uint) (*models.SuratKeluar, error) {
	sk, err := s.Get(suratID)
	if err != nil {
		return nil, err
	}
	if sk.Status != models.KeluarDraf {
		return nil, &InvalidTransitionError{Status: string(sk.Status), Action: "kirim"}
	}
	if sk.Document == nil || sk.Document.NomorSurat == "" {
		return nil, &InvalidTransitionError{Status: string(sk.Status), Action: "kirim tanpa nomor surat"}
	}

	now := time.Now()
	res := s.db.Model(&models.SuratKeluar{}).
		Where("id = ? AND status = ?", suratID, models.KeluarDraf).
		Updates(map[string]any{
			"status":        models.KeluarDikirim,
			"tanggal_kirim": &now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		cur, err := s.Get(suratID)
		if err != nil {
			return nil, err
		}
		return nil, &InvalidTransitionError{Status: string(cur.Status), Action: "kirim"}
	}
	return s.Get(suratID)
}
