package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

// maxGenerateAttempts membatasi retry saat dua registrasi memperebutkan
// nomor urut yang sama dan kalah di unique index.
const maxGenerateAttempts = 5

// NumberingService memberi nomor surat per scope
// {jenis_naskah, klasifikasi, tahun}. Scan nomor terakhir dan insert
// dokumen selalu satu transaksi; di MySQL scan mengunci baris scope
// dengan FOR UPDATE, di dialek lain unique index + retry jadi pengaman.
type NumberingService struct {
	db       *gorm.DB
	orgToken string
}

func NewNumberingService(db *gorm.DB, orgToken string) *NumberingService {
	return &NumberingService{db: db, orgToken: orgToken}
}

// FormatNomorSurat merakit "KODE-URUT/TOKEN/KLASIFIKASI/TAHUN".
// Urut dipad nol minimal 3 digit; di atas 999 lebarnya bertambah sendiri,
// tidak pernah dipotong.
func FormatNomorSurat(kodeJenis, orgToken, kodeKlasifikasi string, urut, tahun int) string {
	return fmt.Sprintf("%s-%03d/%s/%s/%d", kodeJenis, urut, orgToken, kodeKlasifikasi, tahun)
}

// GenerateIn menghitung nomor urut berikutnya di dalam transaksi milik
// pemanggil dan menempelkannya ke doc (NomorUrut, Tahun, NomorSurat)
// tanpa menyimpan. Tahun diambil dari tanggal surat dokumen itu sendiri.
func (s *NumberingService) GenerateIn(tx *gorm.DB, doc *models.Document) error {
	var jenis models.JenisNaskah
	if err := tx.First(&jenis, "id = ? AND is_active = ?", doc.JenisNaskahID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("jenis naskah %d: %w", doc.JenisNaskahID, ErrNotFound)
		}
		return err
	}

	var klas models.Klasifikasi
	if err := tx.First(&klas, "id = ? AND is_active = ?", doc.KlasifikasiID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("klasifikasi %d: %w", doc.KlasifikasiID, ErrNotFound)
		}
		return err
	}

	tahun := doc.TanggalSurat.Year()
	urut, err := nextNomorUrut(tx, doc.JenisNaskahID, doc.KlasifikasiID, tahun)
	if err != nil {
		return err
	}

	doc.Tahun = tahun
	doc.NomorUrut = urut
	doc.NomorSurat = FormatNomorSurat(jenis.Kode, s.orgToken, klas.Kode, urut, tahun)
	return nil
}

// Generate memberi nomor lalu menyimpan doc. Callback related (boleh nil)
// berjalan di transaksi yang sama setelah insert dokumen, untuk baris
// turunan seperti surat masuk/keluar. Seluruh scan+insert diulang dengan
// scan baru saat kalah di unique index, sampai batas percobaan habis.
func (s *NumberingService) Generate(doc *models.Document, related func(tx *gorm.DB) error) (int, string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.GenerateIn(tx, doc); err != nil {
				return err
			}
			if err := tx.Create(doc).Error; err != nil {
				return err
			}
			if related != nil {
				return related(tx)
			}
			return nil
		})
		if err == nil {
			return doc.NomorUrut, doc.NomorSurat, nil
		}
		if IsDuplicateError(err) {
			doc.ID = 0 // rollback membuang baris, struct harus insert ulang
			continue
		}
		return 0, "", err
	}
	return 0, "", fmt.Errorf("generate nomor surat: %w", ErrConflict)
}

// nextNomorUrut membaca nomor urut tertinggi pada scope. COALESCE
// menangani scope kosong (mulai dari 1), pola yang sama dengan raw query
// nomor agenda lama.
func nextNomorUrut(tx *gorm.DB, jenisID, klasID uint, tahun int) (int, error) {
	var last int
	if tx.Dialector.Name() == "mysql" {
		err := tx.Raw(`
			SELECT COALESCE(MAX(nomor_urut), 0)
			FROM documents
			WHERE jenis_naskah_id = ? AND klasifikasi_id = ? AND tahun = ?
			FOR UPDATE
		`, jenisID, klasID, tahun).Scan(&last).Error
		if err != nil {
			return 0, err
		}
		return last + 1, nil
	}

	err := tx.Model(&models.Document{}).
		Where("jenis_naskah_id = ? AND klasifikasi_id = ? AND tahun = ?", jenisID, klasID, tahun).
		Select("COALESCE(MAX(nomor_urut), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// IsDuplicateError mengenali pelanggaran unique constraint lintas dialek.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
