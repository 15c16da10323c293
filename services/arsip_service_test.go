package services

import (
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveSuratMasukSetelahDisposisi(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewArsipService(db)

	// Belum didisposisikan: arsip ditolak dengan error transisi.
	_, err := svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))

	_, err = NewDisposisiService(db).Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	entry, err := svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "berkas fisik lengkap")
	require.NoError(t, err)
	assert.Equal(t, models.SuratTypeMasuk, entry.SuratType)
	assert.Equal(t, sm.ID, entry.SuratID)
	assert.False(t, entry.ArchivedAt.IsZero())

	var cur models.SuratMasuk
	require.NoError(t, db.First(&cur, sm.ID).Error)
	assert.Equal(t, models.MasukDiarsipkan, cur.Status)
}

func TestArchiveDuaKaliDitolak(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewArsipService(db)

	_, err := NewDisposisiService(db).Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	_, err = svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.NoError(t, err)

	_, err = svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.ErrorIs(t, err, ErrAlreadyArchived)
}

func TestUnarchiveLaluArchiveLagi(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewArsipService(db)

	_, err := NewDisposisiService(db).Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	_, err = svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.NoError(t, err)

	require.NoError(t, svc.Unarchive(models.SuratTypeMasuk, sm.ID))

	var cur models.SuratMasuk
	require.NoError(t, db.First(&cur, sm.ID).Error)
	assert.Equal(t, models.MasukDidisposisikan, cur.Status)

	// Round-trip: setelah unarchive, arsip ulang sah.
	_, err = svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari B2", "")
	require.NoError(t, err)
}

func TestUnarchiveTanpaEntri(t *testing.T) {
	db := newTestDB(t)
	svc := NewArsipService(db)

	err := svc.Unarchive(models.SuratTypeMasuk, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestArchiveSuratKeluar(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	tu := seedUser(t, db, "tu", models.LevelPelaksana)
	numbering := NewNumberingService(db, testOrgToken)
	keluarSvc := NewSuratKeluarService(db, numbering)
	svc := NewArsipService(db)

	doc := newDocument(jenis, klas, tu.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	sk := &models.SuratKeluar{TujuanSurat: "Rektorat"}
	require.NoError(t, keluarSvc.Register(doc, sk, nil))

	// Draf belum layak arsip.
	_, err := svc.Archive(models.SuratTypeKeluar, sk.ID, tu.ID, "DIR", "Lemari C3", "")
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))

	_, err = keluarSvc.Send(sk.ID)
	require.NoError(t, err)

	_, err = svc.Archive(models.SuratTypeKeluar, sk.ID, tu.ID, "DIR", "Lemari C3", "")
	require.NoError(t, err)

	var cur models.SuratKeluar
	require.NoError(t, db.First(&cur, sk.ID).Error)
	assert.Equal(t, models.KeluarDiarsipkan, cur.Status)

	require.NoError(t, svc.Unarchive(models.SuratTypeKeluar, sk.ID))
	require.NoError(t, db.First(&cur, sk.ID).Error)
	assert.Equal(t, models.KeluarDikirim, cur.Status)
}

func TestListArsipFilter(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewArsipService(db)

	_, err := NewDisposisiService(db).Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)
	_, err = svc.Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.NoError(t, err)

	list, err := svc.List(ArsipFilter{SuratType: models.SuratTypeMasuk, UnitKerja: "DIR"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.List(ArsipFilter{UnitKerja: "LAIN"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Rentang waktu pengarsipan: ArchivedAt dicap time.Now oleh Archive.
	now := time.Now()
	list, err = svc.List(ArsipFilter{
		ArchivedFrom: now.Add(-time.Hour),
		ArchivedTo:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.List(ArsipFilter{ArchivedTo: now.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, list)
}
