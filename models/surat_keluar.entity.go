package models

import (
	"time"

	"gorm.io/gorm"
)

type StatusSuratKeluar string

const (
	KeluarDraf       StatusSuratKeluar = "draf"
	KeluarDikirim    StatusSuratKeluar = "dikirim"
	KeluarDiarsipkan StatusSuratKeluar = "diarsipkan"
)

// SuratKeluar membungkus satu Document (1:1). Tujuan bisa berupa teks
// bebas (instansi luar) dan/atau daftar user internal lewat tabel
// surat_keluar_tujuan.
type SuratKeluar struct {
	gorm.Model
	DocumentID uint      `gorm:"not null;uniqueIndex"`
	Document   *Document `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`

	TanggalKirim *time.Time `gorm:"type:date;index"`
	TujuanSurat  string     `gorm:"type:varchar(255)"`

	Status StatusSuratKeluar `gorm:"type:varchar(30);not null;default:'draf';index"`

	// Join table PK gabungan (surat_keluar_id, user_id) menjamin satu
	// penerima hanya tercatat sekali per surat.
	Tujuan []User `gorm:"many2many:surat_keluar_tujuan"`
}

func (SuratKeluar) TableName() string {
	return "surat_keluar"
}

func (s StatusSuratKeluar) IsValid() bool {
	switch s {
	case KeluarDraf, KeluarDikirim, KeluarDiarsipkan:
		return true
	default:
		return false
	}
}
