package services

import (
	"errors"
	"fmt"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

// DisposisiService mengatur penerusan surat masuk menyusuri hierarki
// jabatan. Visibilitas mengikuti rantai: penerima awal surat dan semua
// pihak pada disposisi yang sudah ada boleh melihat dan meneruskan.
type DisposisiService struct {
	db *gorm.DB
}

func NewDisposisiService(db *gorm.DB) *DisposisiService {
	return &DisposisiService{db: db}
}

// CanView melaporkan apakah user boleh melihat surat masuk: penerima awal
// surat, atau pengirim/penerima pada salah satu disposisi surat itu.
func (s *DisposisiService) CanView(userID uint, sm *models.SuratMasuk) (bool, error) {
	return canViewIn(s.db, userID, sm)
}

func canViewIn(tx *gorm.DB, userID uint, sm *models.SuratMasuk) (bool, error) {
	if sm.PenerimaID == userID {
		return true, nil
	}
	var n int64
	err := tx.Model(&models.Disposisi{}).
		Where("surat_masuk_id = ? AND (pengirim_id = ? OR penerima_id = ?)", sm.ID, userID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create mencatat disposisi baru dan menggeser status surat ke
// didisposisikan dalam satu transaksi. Cek visibilitas dan hierarki
// diulang di dalam transaksi supaya tidak ada celah check-then-act.
func (s *DisposisiService) Create(pengirimID, suratMasukID, penerimaID uint, instruksi, catatan string) (*models.Disposisi, error) {
	var d *models.Disposisi
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sm models.SuratMasuk
		if err := tx.First(&sm, suratMasukID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("surat masuk %d: %w", suratMasukID, ErrNotFound)
			}
			return err
		}

		pengirim, err := userWithJabatan(tx, pengirimID)
		if err != nil {
			return err
		}
		penerima, err := userWithJabatan(tx, penerimaID)
		if err != nil {
			return err
		}

		ok, err := canViewIn(tx, pengirimID, &sm)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnauthorized
		}

		if !pengirim.Jabatan.CanRouteTo(penerima.Jabatan) {
			return &HierarchyViolationError{
				PengirimLevel: pengirim.Jabatan.LevelHierarki,
				PenerimaLevel: penerima.Jabatan.LevelHierarki,
			}
		}

		if sm.Status == models.MasukDiarsipkan {
			return &InvalidTransitionError{Status: string(sm.Status), Action: "disposisi"}
		}

		d = &models.Disposisi{
			SuratMasukID: sm.ID,
			PengirimID:   pengirimID,
			PenerimaID:   penerimaID,
			Instruksi:    instruksi,
			Catatan:      catatan,
		}
		if err := tx.Create(d).Error; err != nil {
			return err
		}

		// Monoton: sekali didisposisikan, unread tidak bisa menariknya
		// kembali. Guard status menutup balapan dengan arsip.
		res := tx.Model(&models.SuratMasuk{}).
			Where("id = ? AND status <> ?", sm.ID, models.MasukDiarsipkan).
			Update("status", models.MasukDidisposisikan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InvalidTransitionError{Status: string(models.MasukDiarsipkan), Action: "disposisi"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Update mengganti isi disposisi. Hanya pengirim asli yang boleh, dan
// hanya selama penerimanya belum menindaklanjuti. Cek tindak lanjut dan
// tulis jalan dalam satu transaksi, pola yang sama dengan Create.
func (s *DisposisiService) Update(disposisiID, actorID uint, instruksi, catatan string) (*models.Disposisi, error) {
	var d *models.Disposisi
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		d, err = getDisposisi(tx, disposisiID)
		if err != nil {
			return err
		}
		if d.PengirimID != actorID {
			return ErrUnauthorized
		}

		acted, err := recipientActedIn(tx, d)
		if err != nil {
			return err
		}
		if acted {
			return fmt.Errorf("disposisi sudah ditindaklanjuti penerima: %w", ErrConflict)
		}

		d.Instruksi = instruksi
		d.Catatan = catatan
		return tx.Save(d).Error
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Delete menghapus disposisi dengan aturan yang sama dengan Update.
func (s *DisposisiService) Delete(disposisiID, actorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		d, err := getDisposisi(tx, disposisiID)
		if err != nil {
			return err
		}
		if d.PengirimID != actorID {
			return ErrUnauthorized
		}

		acted, err := recipientActedIn(tx, d)
		if err != nil {
			return err
		}
		if acted {
			return fmt.Errorf("disposisi sudah ditindaklanjuti penerima: %w", ErrConflict)
		}

		return tx.Delete(&models.Disposisi{}, d.ID).Error
	})
}

// ListForSurat mengembalikan rantai disposisi sebuah surat, hanya untuk
// user yang lolos cek visibilitas.
func (s *DisposisiService) ListForSurat(userID, suratMasukID uint) ([]models.Disposisi, error) {
	var sm models.SuratMasuk
	if err := s.db.First(&sm, suratMasukID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.CanView(userID, &sm)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}

	var list []models.Disposisi
	err = s.db.
		Preload("Pengirim").
		Preload("Penerima").
		Where("surat_masuk_id = ?", suratMasukID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func getDisposisi(tx *gorm.DB, id uint) (*models.Disposisi, error) {
	var d models.Disposisi
	if err := tx.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// recipientActedIn: disposisi lanjutan dari si penerima pada surat yang
// sama dianggap bukti dia sudah bertindak (tidak ada flag "acted" di
// data), dan itu mengunci disposisi induknya dari mutasi.
func recipientActedIn(tx *gorm.DB, d *models.Disposisi) (bool, error) {
	var n int64
	err := tx.Model(&models.Disposisi{}).
		Where("surat_masuk_id = ? AND pengirim_id = ? AND id <> ?", d.SuratMasukID, d.PenerimaID, d.ID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func userWithJabatan(tx *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := tx.Preload("Jabatan").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if u.Jabatan == nil || !u.Jabatan.IsActive {
		return nil, fmt.Errorf("jabatan user %d: %w", id, ErrNotFound)
	}
	return &u, nil
}
