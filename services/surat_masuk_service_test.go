package services

import (
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSuratMasuk(t *testing.T) {
	db := newTestDB(t)
	penerima := seedUser(t, db, "direktur", models.LevelPimpinan)

	sm := registerSuratMasuk(t, db, penerima)

	assert.Equal(t, models.MasukDiterima, sm.Status)
	require.NotZero(t, sm.DocumentID)

	var doc models.Document
	require.NoError(t, db.First(&doc, sm.DocumentID).Error)
	assert.Equal(t, 1, doc.NomorUrut)
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2024", doc.NomorSurat)
	assert.Equal(t, 2024, doc.Tahun)
}

func TestRegisterSuratMasukPenerimaTidakAda(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))

	doc := newDocument(jenis, klas, 1, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	sm := &models.SuratMasuk{
		TanggalDiterima: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		AsalSurat:       "BKN",
		PenerimaID:      777,
	}
	require.ErrorIs(t, svc.Register(doc, sm), ErrNotFound)
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	penerima := seedUser(t, db, "direktur", models.LevelPimpinan)
	sm := registerSuratMasuk(t, db, penerima)
	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))

	got, err := svc.MarkRead(sm.ID, penerima.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MasukDibaca, got.Status)
	require.NotNil(t, got.ReadAt)
	require.NotNil(t, got.ReadBy)
	assert.Equal(t, penerima.ID, *got.ReadBy)

	firstReadAt := *got.ReadAt

	// Hukum idempoten: baca kedua tidak mengubah apa pun dan tidak error.
	again, err := svc.MarkRead(sm.ID, penerima.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MasukDibaca, again.Status)
	require.NotNil(t, again.ReadAt)
	assert.True(t, again.ReadAt.Equal(firstReadAt))
}

func TestMarkUnreadHanyaDariDibaca(t *testing.T) {
	db := newTestDB(t)
	penerima := seedUser(t, db, "direktur", models.LevelPimpinan)
	sm := registerSuratMasuk(t, db, penerima)
	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))

	// Masih diterima: belum ada yang bisa di-unread.
	_, err := svc.MarkUnread(sm.ID)
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))

	_, err = svc.MarkRead(sm.ID, penerima.ID)
	require.NoError(t, err)

	got, err := svc.MarkUnread(sm.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MasukDiterima, got.Status)
	assert.Nil(t, got.ReadAt)
	assert.Nil(t, got.ReadBy)
}

func TestMarkUnreadSetelahDisposisiDitolak(t *testing.T) {
	db := newTestDB(t)
	penerima := seedUser(t, db, "direktur", models.LevelPimpinan)
	bawahan := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, penerima)

	_, err := NewDisposisiService(db).Create(penerima.ID, sm.ID, bawahan.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))
	_, err = svc.MarkUnread(sm.ID)
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "didisposisikan")
}

func TestMarkReadSuratTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewSuratMasukService(db, NewNumberingService(db, testOrgToken))

	_, err := svc.MarkRead(404, 1)
	require.ErrorIs(t, err, ErrNotFound)
}
