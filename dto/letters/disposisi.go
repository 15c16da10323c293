package letters

import (
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type CreateDisposisiRequest struct {
	PenerimaID uint   `json:"penerima_id"`
	Instruksi  string `json:"instruksi"`
	Catatan    string `json:"catatan"`
}

func (r *CreateDisposisiRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.PenerimaID == 0 {
		errors["penerima_id"] = "penerima_id is required"
	}
	if strings.TrimSpace(r.Instruksi) == "" {
		errors["instruksi"] = "instruksi is required"
	}

	return errors
}

type UpdateDisposisiRequest struct {
	Instruksi string `json:"instruksi"`
	Catatan   string `json:"catatan"`
}

func (r *UpdateDisposisiRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Instruksi) == "" {
		errors["instruksi"] = "instruksi is required"
	}

	return errors
}

type DisposisiResponse struct {
	ID           uint   `json:"id"`
	SuratMasukID uint   `json:"surat_masuk_id"`
	PengirimID   uint   `json:"pengirim_id"`
	NamaPengirim string `json:"nama_pengirim,omitempty"`
	PenerimaID   uint   `json:"penerima_id"`
	NamaPenerima string `json:"nama_penerima,omitempty"`
	Instruksi    string `json:"instruksi"`
	Catatan      string `json:"catatan,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func NewDisposisiResponse(d *models.Disposisi) DisposisiResponse {
	resp := DisposisiResponse{
		ID:           d.ID,
		SuratMasukID: d.SuratMasukID,
		PengirimID:   d.PengirimID,
		PenerimaID:   d.PenerimaID,
		Instruksi:    d.Instruksi,
		Catatan:      d.Catatan,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
	if d.Pengirim != nil {
		resp.NamaPengirim = d.Pengirim.Username
	}
	if d.Penerima != nil {
		resp.NamaPenerima = d.Penerima.Username
	}
	return resp
}

func NewDisposisiResponses(items []models.Disposisi) []DisposisiResponse {
	out := make([]DisposisiResponse, 0, len(items))
	for i := range items {
		out = append(out, NewDisposisiResponse(&items[i]))
	}
	return out
}
