package letters

import (
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type ArchiveRequest struct {
	SuratType   string `json:"surat_type"`
	SuratID     uint   `json:"surat_id"`
	UnitKerja   string `json:"unit_kerja"`
	LokasiFisik string `json:"lokasi_fisik"`
	Keterangan  string `json:"keterangan"`
}

func (r *ArchiveRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if !models.SuratType(r.SuratType).IsValid() {
		errors["surat_type"] = "surat_type must be masuk or keluar"
	}
	if r.SuratID == 0 {
		errors["surat_id"] = "surat_id is required"
	}
	if strings.TrimSpace(r.UnitKerja) == "" {
		errors["unit_kerja"] = "unit_kerja is required"
	}

	return errors
}

type ArsipResponse struct {
	ID          uint   `json:"id"`
	SuratType   string `json:"surat_type"`
	SuratID     uint   `json:"surat_id"`
	UnitKerja   string `json:"unit_kerja"`
	LokasiFisik string `json:"lokasi_fisik,omitempty"`
	Keterangan  string `json:"keterangan,omitempty"`
	ArchivedBy  string `json:"archived_by,omitempty"`
	ArchivedAt  string `json:"archived_at"`
}

func NewArsipResponse(a *models.Arsip) ArsipResponse {
	resp := ArsipResponse{
		ID:          a.ID,
		SuratType:   string(a.SuratType),
		SuratID:     a.SuratID,
		UnitKerja:   a.UnitKerja,
		LokasiFisik: a.LokasiFisik,
		Keterangan:  a.Keterangan,
		ArchivedAt:  a.ArchivedAt.Format(time.RFC3339),
	}
	if a.ArchivedBy != nil {
		resp.ArchivedBy = a.ArchivedBy.Username
	}
	return resp
}

func NewArsipResponses(items []models.Arsip) []ArsipResponse {
	out := make([]ArsipResponse, 0, len(items))
	for i := range items {
		out = append(out, NewArsipResponse(&items[i]))
	}
	return out
}
