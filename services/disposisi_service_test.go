package services

import (
	"testing"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDisposisiMenggeserStatus(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	d, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "selesaikan minggu ini", "prioritas")
	require.NoError(t, err)
	assert.Equal(t, direktur.ID, d.PengirimID)
	assert.Equal(t, kabag.ID, d.PenerimaID)

	var cur models.SuratMasuk
	require.NoError(t, db.First(&cur, sm.ID).Error)
	// Disposisi tidak mensyaratkan tanda baca eksplisit.
	assert.Equal(t, models.MasukDidisposisikan, cur.Status)
}

func TestCreateDisposisiVisibilitasRantai(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	kasubag := seedUser(t, db, "kasubag", models.LevelKasubag)
	penyusup := seedUser(t, db, "penyusup", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	// Di luar rantai: tidak boleh meneruskan.
	_, err := svc.Create(penyusup.ID, sm.ID, kasubag.ID, "coba-coba", "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	// Visibilitas menular sepanjang rantai: kabag kini pihak disposisi.
	_, err = svc.Create(kabag.ID, sm.ID, kasubag.ID, "teruskan", "")
	require.NoError(t, err)

	ok, err := svc.CanView(kasubag.ID, sm)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CanView(penyusup.ID, sm)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateDisposisiHierarki(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	kabagLain := seedUser(t, db, "kabag2", models.LevelKabag)
	pelaksana := seedUser(t, db, "pelaksana", models.LevelPelaksana)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	_, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	// Melawan arah: level 3 tidak boleh naik ke level 1.
	_, err = svc.Create(kabag.ID, sm.ID, direktur.ID, "balik ke atas", "")
	require.Error(t, err)
	assert.True(t, IsHierarchyViolation(err))

	// Lateral selevel diizinkan.
	_, err = svc.Create(kabag.ID, sm.ID, kabagLain.ID, "bantu tangani", "")
	require.NoError(t, err)

	// Level 5 terminal: boleh menerima, tidak pernah meneruskan.
	_, err = svc.Create(kabagLain.ID, sm.ID, pelaksana.ID, "eksekusi", "")
	require.NoError(t, err)

	_, err = svc.Create(pelaksana.ID, sm.ID, kabag.ID, "lempar balik", "")
	require.Error(t, err)
	assert.True(t, IsHierarchyViolation(err))
}

func TestCreateDisposisiSuratDiarsipkanDitolak(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	_, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	_, err = NewArsipService(db).Archive(models.SuratTypeMasuk, sm.ID, direktur.ID, "DIR", "Lemari A1", "")
	require.NoError(t, err)

	_, err = svc.Create(direktur.ID, sm.ID, kabag.ID, "terlambat", "")
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
}

func TestUpdateDisposisiHanyaPengirim(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	d, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "draf instruksi", "")
	require.NoError(t, err)

	_, err = svc.Update(d.ID, kabag.ID, "ubah sendiri", "")
	require.ErrorIs(t, err, ErrUnauthorized)

	updated, err := svc.Update(d.ID, direktur.ID, "instruksi final", "segera")
	require.NoError(t, err)
	assert.Equal(t, "instruksi final", updated.Instruksi)
	assert.Equal(t, "segera", updated.Catatan)
}

func TestMutasiDisposisiTerkunciSetelahDitindaklanjuti(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	kasubag := seedUser(t, db, "kasubag", models.LevelKasubag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	d, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	// Kabag meneruskan: disposisi induk terkunci.
	_, err = svc.Create(kabag.ID, sm.ID, kasubag.ID, "teruskan", "")
	require.NoError(t, err)

	_, err = svc.Update(d.ID, direktur.ID, "revisi terlambat", "")
	require.ErrorIs(t, err, ErrConflict)

	err = svc.Delete(d.ID, direktur.ID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestMutasiDisposisiTerkunciDiDalamTransaksi(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	kasubag := seedUser(t, db, "kasubag", models.LevelKasubag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	d, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "instruksi awal", "")
	require.NoError(t, err)

	// Disposisi lanjutan datang tepat sebelum pengirim menulis; cek
	// tindak lanjut dilakukan dalam transaksi yang sama dengan Save/Delete
	// sehingga mutasinya ditolak dan tidak ada yang tertulis.
	_, err = svc.Create(kabag.ID, sm.ID, kasubag.ID, "teruskan", "")
	require.NoError(t, err)

	_, err = svc.Update(d.ID, direktur.ID, "revisi diam-diam", "")
	require.ErrorIs(t, err, ErrConflict)

	var tersimpan models.Disposisi
	require.NoError(t, db.First(&tersimpan, d.ID).Error)
	assert.Equal(t, "instruksi awal", tersimpan.Instruksi)

	err = svc.Delete(d.ID, direktur.ID)
	require.ErrorIs(t, err, ErrConflict)
	var n int64
	require.NoError(t, db.Model(&models.Disposisi{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestDeleteDisposisiSebelumDitindaklanjuti(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	d, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "salah kirim", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(d.ID, direktur.ID))

	_, err = svc.Update(d.ID, direktur.ID, "sudah hilang", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListForSurat(t *testing.T) {
	db := newTestDB(t)
	direktur := seedUser(t, db, "direktur", models.LevelPimpinan)
	kabag := seedUser(t, db, "kabag", models.LevelKabag)
	penyusup := seedUser(t, db, "penyusup", models.LevelKabag)
	sm := registerSuratMasuk(t, db, direktur)
	svc := NewDisposisiService(db)

	_, err := svc.Create(direktur.ID, sm.ID, kabag.ID, "tindak lanjuti", "")
	require.NoError(t, err)

	list, err := svc.ListForSurat(kabag.ID, sm.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tindak lanjuti", list[0].Instruksi)

	_, err = svc.ListForSurat(penyusup.ID, sm.ID)
	require.ErrorIs(t, err, ErrUnauthorized)
}
