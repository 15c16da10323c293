package services

import (
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSuratKeluarBernomor(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	tu := seedUser(t, db, "tu", models.LevelPelaksana)
	pejabat := seedUser(t, db, "kabag", models.LevelKabag)
	svc := NewSuratKeluarService(db, NewNumberingService(db, testOrgToken))

	doc := newDocument(jenis, klas, tu.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	sk := &models.SuratKeluar{TujuanSurat: "Kementerian Pendidikan"}
	require.NoError(t, svc.Register(doc, sk, []uint{pejabat.ID}))

	assert.Equal(t, models.KeluarDraf, sk.Status)
	assert.Nil(t, sk.TanggalKirim)

	loaded, err := svc.Get(sk.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Document)
	assert.Equal(t, "SK-001/UN2.F13.DIR/EKN/2024", loaded.Document.NomorSurat)
	require.Len(t, loaded.Tujuan, 1)
	assert.Equal(t, pejabat.ID, loaded.Tujuan[0].ID)
}

func TestRegisterSuratKeluarTujuanTidakAda(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	tu := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewSuratKeluarService(db, NewNumberingService(db, testOrgToken))

	doc := newDocument(jenis, klas, tu.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	sk := &models.SuratKeluar{TujuanSurat: ""}
	require.ErrorIs(t, svc.Register(doc, sk, []uint{9999}), ErrNotFound)
}

func TestSendHanyaDariDraf(t *testing.T) {
	db := newTestDB(t)
	jenis, klas := seedRefs(t, db)
	tu := seedUser(t, db, "tu", models.LevelPelaksana)
	svc := NewSuratKeluarService(db, NewNumberingService(db, testOrgToken))

	doc := newDocument(jenis, klas, tu.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	sk := &models.SuratKeluar{TujuanSurat: "Rektorat"}
	require.NoError(t, svc.Register(doc, sk, nil))

	sent, err := svc.Send(sk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.KeluarDikirim, sent.Status)
	require.NotNil(t, sent.TanggalKirim)

	// Kirim kedua: status sudah bukan draf.
	_, err = svc.Send(sk.ID)
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "dikirim")
}

func TestSendSuratTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewSuratKeluarService(db, NewNumberingService(db, testOrgToken))

	_, err := svc.Send(404)
	require.ErrorIs(t, err, ErrNotFound)
}
