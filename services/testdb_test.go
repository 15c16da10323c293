package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOrgToken = "UN2.F13.DIR"

// newTestDB membuka SQLite in-memory dengan skema penuh. Pool dibatasi
// satu koneksi supaya database memory tidak hilang antar koneksi dan
// transaksi paralel antre dengan rapi.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Jabatan{},
		&models.User{},
		&models.JenisNaskah{},
		&models.Klasifikasi{},
		&models.Document{},
		&models.SuratMasuk{},
		&models.SuratKeluar{},
		&models.Disposisi{},
		&models.Arsip{},
	))
	return db
}

func seedRefs(t *testing.T, db *gorm.DB) (models.JenisNaskah, models.Klasifikasi) {
	t.Helper()

	jenis := models.JenisNaskah{Kode: "SK", Nama: "Surat Keputusan", IsActive: true}
	require.NoError(t, db.Create(&jenis).Error)

	klas := models.Klasifikasi{Kode: "EKN", Nama: "Ekonomi", IsActive: true}
	require.NoError(t, db.Create(&klas).Error)

	return jenis, klas
}

func seedUser(t *testing.T, db *gorm.DB, username string, level int) *models.User {
	t.Helper()

	jabatan := models.Jabatan{
		NamaJabatan:   fmt.Sprintf("Jabatan %s", username),
		LevelHierarki: level,
		KodeUK:        "DIR",
		IsActive:      true,
	}
	require.NoError(t, db.Create(&jabatan).Error)

	user := models.User{
		Username:     username,
		Email:        username + "@sipas.test",
		PasswordHash: "x",
		Role:         models.RolePejabat,
		JabatanID:    jabatan.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	user.Jabatan = &jabatan
	return &user
}

func newDocument(jenis models.JenisNaskah, klas models.Klasifikasi, pencatat uint, tanggal time.Time) *models.Document {
	return &models.Document{
		JenisNaskahID: jenis.ID,
		KlasifikasiID: klas.ID,
		Perihal:       "Perihal uji",
		TanggalSurat:  tanggal,
		SifatKeamanan: models.KeamananBiasa,
		SifatUrgensi:  models.UrgensiBiasa,
		UserID:        pencatat,
	}
}

// registerSuratMasuk mendaftarkan satu surat masuk lengkap untuk fixture.
func registerSuratMasuk(t *testing.T, db *gorm.DB, penerima *models.User) *models.SuratMasuk {
	t.Helper()

	jenis, klas := seedRefs(t, db)
	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))

	doc := newDocument(jenis, klas, penerima.ID, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	sm := &models.SuratMasuk{
		TanggalDiterima: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		AsalSurat:       "Kementerian Keuangan",
		PenerimaID:      penerima.ID,
	}
	require.NoError(t, svc.Register(doc, sm))
	return sm
}
