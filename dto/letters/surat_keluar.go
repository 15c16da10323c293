package letters

import (
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type CreateSuratKeluarRequest struct {
	DocumentPayload
	TujuanSurat string `json:"tujuan_surat" form:"tujuan_surat"`
	TujuanIDs   []uint `json:"tujuan_ids" form:"tujuan_ids"`
}

func (r *CreateSuratKeluarRequest) Validate() map[string]string {
	errors := r.DocumentPayload.Validate()

	if strings.TrimSpace(r.TujuanSurat) == "" && len(r.TujuanIDs) == 0 {
		errors["tujuan"] = "tujuan_surat or tujuan_ids is required"
	}

	return errors
}

func (r *CreateSuratKeluarRequest) ToSuratKeluar() *models.SuratKeluar {
	return &models.SuratKeluar{
		TujuanSurat: strings.TrimSpace(r.TujuanSurat),
	}
}

type SuratKeluarResponse struct {
	ID           uint             `json:"id"`
	Document     DocumentResponse `json:"document"`
	TanggalKirim *string          `json:"tanggal_kirim,omitempty"`
	TujuanSurat  string           `json:"tujuan_surat,omitempty"`
	Tujuan       []string         `json:"tujuan,omitempty"`
	Status       string           `json:"status"`
}

func NewSuratKeluarResponse(sk *models.SuratKeluar) SuratKeluarResponse {
	resp := SuratKeluarResponse{
		ID:          sk.ID,
		TujuanSurat: sk.TujuanSurat,
		Status:      string(sk.Status),
	}
	if sk.Document != nil {
		resp.Document = NewDocumentResponse(sk.Document)
	}
	if sk.TanggalKirim != nil {
		tanggal := sk.TanggalKirim.Format(dateLayout)
		resp.TanggalKirim = &tanggal
	}
	for _, u := range sk.Tujuan {
		resp.Tujuan = append(resp.Tujuan, u.Username)
	}
	return resp
}
