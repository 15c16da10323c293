package letters

import (
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

const dateLayout = "2006-01-02"

// DocumentPayload adalah bagian naskah yang sama untuk surat masuk dan
// surat keluar.
type DocumentPayload struct {
	JenisNaskahID uint   `json:"jenis_naskah_id" form:"jenis_naskah_id"`
	KlasifikasiID uint   `json:"klasifikasi_id" form:"klasifikasi_id"`
	Perihal       string `json:"perihal" form:"perihal"`
	TanggalSurat  string `json:"tanggal_surat" form:"tanggal_surat"`
	SifatKeamanan string `json:"sifat_keamanan" form:"sifat_keamanan"`
	SifatUrgensi  string `json:"sifat_urgensi" form:"sifat_urgensi"`
}

func (p *DocumentPayload) Validate() map[string]string {
	errors := make(map[string]string)

	if p.JenisNaskahID == 0 {
		errors["jenis_naskah_id"] = "jenis_naskah_id is required"
	}
	if p.KlasifikasiID == 0 {
		errors["klasifikasi_id"] = "klasifikasi_id is required"
	}
	if strings.TrimSpace(p.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if _, err := time.Parse(dateLayout, p.TanggalSurat); err != nil {
		errors["tanggal_surat"] = "tanggal_surat must be YYYY-MM-DD"
	}
	if p.SifatKeamanan != "" && !models.SifatKeamanan(p.SifatKeamanan).IsValid() {
		errors["sifat_keamanan"] = "sifat_keamanan must be biasa, terbatas, or rahasia"
	}
	if p.SifatUrgensi != "" && !models.SifatUrgensi(p.SifatUrgensi).IsValid() {
		errors["sifat_urgensi"] = "sifat_urgensi must be biasa, segera, or kilat"
	}

	return errors
}

// ToDocument membangun Document baru dari payload; nomor surat diisi
// belakangan oleh service penomoran. Panggil hanya setelah Validate lolos.
func (p *DocumentPayload) ToDocument(userID uint) *models.Document {
	tanggal, _ := time.Parse(dateLayout, p.TanggalSurat)

	doc := &models.Document{
		JenisNaskahID: p.JenisNaskahID,
		KlasifikasiID: p.KlasifikasiID,
		Perihal:       strings.TrimSpace(p.Perihal),
		TanggalSurat:  tanggal,
		SifatKeamanan: models.KeamananBiasa,
		SifatUrgensi:  models.UrgensiBiasa,
		UserID:        userID,
	}
	if p.SifatKeamanan != "" {
		doc.SifatKeamanan = models.SifatKeamanan(p.SifatKeamanan)
	}
	if p.SifatUrgensi != "" {
		doc.SifatUrgensi = models.SifatUrgensi(p.SifatUrgensi)
	}
	return doc
}

type DocumentResponse struct {
	ID            uint   `json:"id"`
	NomorSurat    string `json:"nomor_surat"`
	NomorUrut     int    `json:"nomor_urut"`
	Tahun         int    `json:"tahun"`
	JenisNaskah   string `json:"jenis_naskah,omitempty"`
	Klasifikasi   string `json:"klasifikasi,omitempty"`
	Perihal       string `json:"perihal"`
	TanggalSurat  string `json:"tanggal_surat"`
	SifatKeamanan string `json:"sifat_keamanan"`
	SifatUrgensi  string `json:"sifat_urgensi"`
	FilePath      string `json:"file_path,omitempty"`
}

func NewDocumentResponse(doc *models.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:            doc.ID,
		NomorSurat:    doc.NomorSurat,
		NomorUrut:     doc.NomorUrut,
		Tahun:         doc.Tahun,
		Perihal:       doc.Perihal,
		TanggalSurat:  doc.TanggalSurat.Format(dateLayout),
		SifatKeamanan: string(doc.SifatKeamanan),
		SifatUrgensi:  string(doc.SifatUrgensi),
		FilePath:      doc.FilePath,
	}
	if doc.JenisNaskah != nil {
		resp.JenisNaskah = doc.JenisNaskah.Nama
	}
	if doc.Klasifikasi != nil {
		resp.Klasifikasi = doc.Klasifikasi.Nama
	}
	return resp
}
