package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFormatNomorSurat(t *testing.T) {
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2024", FormatNomorSurat("SK", "UN2.F13.DIR", "EKN", 1, 2024))
	assert.Equal(t, "ND-042/UN2.F13.DIR/KPG/2025", FormatNomorSurat("ND", "UN2.F13.DIR", "KPG", 42, 2025))

	// Di atas 999 lebar bertambah, tidak dipotong.
	assert.Equal(t, "SK-1000/UN2.F13.DIR/EKN/2024", FormatNomorSurat("SK", "UN2.F13.DIR", "EKN", 1000, 2024))
	assert.Equal(t, "SK-12345/UN2.F13.DIR/EKN/2024", FormatNomorSurat("SK", "UN2.F13.DIR", "EKN", 12345, 2024))
}

func TestGenerateFirstAndSecondNumber(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	tanggal := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	doc1 := newDocument(jenis, klas, pencatat.ID, tanggal)
	urut, nomor, err := svc.Generate(doc1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, urut)
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2024", nomor)

	doc2 := newDocument(jenis, klas, pencatat.ID, tanggal)
	urut, nomor, err = svc.Generate(doc2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, urut)
	assert.Equal(t, "SK-002/UN2.F13.DIR/EKN/2024", nomor)
}

func TestGenerateScopesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	klasLain := models.Klasifikasi{Kode: "KPG", Nama: "Kepegawaian", IsActive: true}
	require.NoError(t, db.Create(&klasLain).Error)

	tahun2024 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.Generate(newDocument(jenis, klas, pencatat.ID, tahun2024), nil)
	require.NoError(t, err)

	// Klasifikasi lain mulai dari 1 lagi.
	doc := newDocument(jenis, klasLain, pencatat.ID, tahun2024)
	urut, nomor, err := svc.Generate(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, urut)
	assert.Equal(t, "SK-001/UN2.F13.DIR/KPG/2024", nomor)

	// Tahun diambil dari tanggal surat: registrasi mundur ikut scope 2023.
	mundur := newDocument(jenis, klas, pencatat.ID, time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC))
	urut, nomor, err = svc.Generate(mundur, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, urut)
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2023", nomor)
}

func TestGenerateMissingOrInactiveRefs(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	tanggal := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	doc := newDocument(jenis, klas, pencatat.ID, tanggal)
	doc.JenisNaskahID = 9999
	_, _, err := svc.Generate(doc, nil)
	require.ErrorIs(t, err, ErrNotFound)

	nonaktif := models.JenisNaskah{Kode: "UND", Nama: "Undangan", IsActive: false}
	require.NoError(t, db.Create(&nonaktif).Error)

	doc = newDocument(nonaktif, klas, pencatat.ID, tanggal)
	_, _, err = svc.Generate(doc, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateConflictWhenNumberTaken(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	tanggal := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// Baris racun: MAX(nomor_urut) = 5, jadi scan selalu menghasilkan 6,
	// tapi nomor surat untuk urut 6 sudah terpakai. Tiap percobaan kalah
	// di unique index nomor_surat dengan scan ulang yang sama, sampai
	// batas retry habis.
	racun := newDocument(jenis, klas, pencatat.ID, tanggal)
	racun.Tahun = 2024
	racun.NomorUrut = 5
	racun.NomorSurat = "SK-006/UN2.F13.DIR/EKN/2024"
	require.NoError(t, db.Create(racun).Error)

	doc := newDocument(jenis, klas, pencatat.ID, tanggal)
	_, _, err := svc.Generate(doc, nil)
	require.ErrorIs(t, err, ErrConflict)
}

func TestGenerateRetriesAfterDuplicate(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	tanggal := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	doc := newDocument(jenis, klas, pencatat.ID, tanggal)

	// Percobaan pertama kalah di unique index lewat baris turunan
	// (seperti dua registrasi memperebutkan scope yang sama); percobaan
	// kedua harus mengulang scan+insert dari awal dan berhasil.
	attempts := 0
	urut, nomor, err := svc.Generate(doc, func(tx *gorm.DB) error {
		attempts++
		if attempts == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, urut)
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2024", nomor)

	// Rollback percobaan pertama tidak meninggalkan dokumen yatim.
	var n int64
	require.NoError(t, db.Model(&models.Document{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestGenerateConcurrentSameScope(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	pencatat := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewNumberingService(db, testOrgToken)

	const n = 20
	tanggal := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	results := make(chan int, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc := newDocument(jenis, klas, pencatat.ID, tanggal)
			urut, _, err := svc.Generate(doc, nil)
			if err != nil {
				errs <- err
				return
			}
			results <- urut
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("generate gagal: %v", err)
	}

	seen := make(map[int]bool, n)
	for urut := range results {
		require.False(t, seen[urut], "nomor urut %d keluar dua kali", urut)
		seen[urut] = true
	}

	// Berurutan rapat mulai dari 1, tanpa lubang.
	require.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], fmt.Sprintf("nomor urut %d hilang", i))
	}
}
