package events

import (
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

// SuratEventType mendefinisikan jenis event terkait siklus hidup surat
type SuratEventType string

const (
	// SuratMasukDicatat dipublikasikan saat surat masuk selesai diregistrasi
	SuratMasukDicatat SuratEventType = "SuratMasukDicatat"

	// SuratKeluarDikirim dipublikasikan saat draf surat keluar dikirim
	SuratKeluarDikirim SuratEventType = "SuratKeluarDikirim"

	// DisposisiDibuat dipublikasikan saat disposisi baru tercatat
	DisposisiDibuat SuratEventType = "DisposisiDibuat"

	// SuratDiarsipkan dipublikasikan saat surat masuk/keluar diarsipkan
	SuratDiarsipkan SuratEventType = "SuratDiarsipkan"
)

// SuratEvent adalah payload untuk event surat. Field yang tidak relevan
// untuk sebuah jenis event dibiarkan nil.
type SuratEvent struct {
	Type        SuratEventType
	SuratMasuk  *models.SuratMasuk
	SuratKeluar *models.SuratKeluar
	Disposisi   *models.Disposisi
	Arsip       *models.Arsip
}

// SuratEventBus adalah channel untuk menangani event surat.
// Channel ini di-buffer untuk mencegah blocking pada handler API
// saat mempublikasikan event.
var SuratEventBus = make(chan SuratEvent, 100)
