package letters

import (
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type CreateSuratMasukRequest struct {
	DocumentPayload
	TanggalDiterima string `json:"tanggal_diterima" form:"tanggal_diterima"`
	AsalSurat       string `json:"asal_surat" form:"asal_surat"`
	PenerimaID      uint   `json:"penerima_id" form:"penerima_id"`
}

func (r *CreateSuratMasukRequest) Validate() map[string]string {
	errors := r.DocumentPayload.Validate()

	if _, err := time.Parse(dateLayout, r.TanggalDiterima); err != nil {
		errors["tanggal_diterima"] = "tanggal_diterima must be YYYY-MM-DD"
	}
	if strings.TrimSpace(r.AsalSurat) == "" {
		errors["asal_surat"] = "asal_surat is required"
	}
	if r.PenerimaID == 0 {
		errors["penerima_id"] = "penerima_id is required"
	}

	return errors
}

func (r *CreateSuratMasukRequest) ToSuratMasuk() *models.SuratMasuk {
	tanggal, _ := time.Parse(dateLayout, r.TanggalDiterima)
	return &models.SuratMasuk{
		TanggalDiterima: tanggal,
		AsalSurat:       strings.TrimSpace(r.AsalSurat),
		PenerimaID:      r.PenerimaID,
	}
}

type SuratMasukResponse struct {
	ID              uint             `json:"id"`
	Document        DocumentResponse `json:"document"`
	TanggalDiterima string           `json:"tanggal_diterima"`
	AsalSurat       string           `json:"asal_surat"`
	PenerimaID      uint             `json:"penerima_id"`
	NamaPenerima    string           `json:"nama_penerima,omitempty"`
	Status          string           `json:"status"`
	ReadAt          *string          `json:"read_at,omitempty"`
}

func NewSuratMasukResponse(sm *models.SuratMasuk) SuratMasukResponse {
	resp := SuratMasukResponse{
		ID:              sm.ID,
		TanggalDiterima: sm.TanggalDiterima.Format(dateLayout),
		AsalSurat:       sm.AsalSurat,
		PenerimaID:      sm.PenerimaID,
		Status:          string(sm.Status),
	}
	if sm.Document != nil {
		resp.Document = NewDocumentResponse(sm.Document)
	}
	if sm.Penerima != nil {
		resp.NamaPenerima = sm.Penerima.Username
	}
	if sm.ReadAt != nil {
		readAt := sm.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}
	return resp
}
