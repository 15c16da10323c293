package models

import (
	"time"

	"gorm.io/gorm"
)

type StatusSuratMasuk string

const (
	MasukDiterima       StatusSuratMasuk = "diterima"
	MasukDibaca         StatusSuratMasuk = "dibaca"
	MasukDidisposisikan StatusSuratMasuk = "didisposisikan"
	MasukDiarsipkan     StatusSuratMasuk = "diarsipkan"
)

// SuratMasuk membungkus satu Document (1:1) dan menambah siklus hidup
// surat masuk. Penanda baca (read_at/read_by) sengaja dipisah dari kolom
// status: status adalah alur kerja, penanda baca hanya catatan.
type SuratMasuk struct {
	gorm.Model
	DocumentID uint      `gorm:"not null;uniqueIndex"`
	Document   *Document `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`

	TanggalDiterima time.Time `gorm:"type:date;not null;index"`
	AsalSurat       string    `gorm:"type:varchar(200);not null;index"`

	// Penerima awal surat; akar rantai disposisi.
	PenerimaID uint  `gorm:"not null;index"`
	Penerima   *User `gorm:"foreignKey:PenerimaID"`

	Status StatusSuratMasuk `gorm:"type:varchar(30);not null;default:'diterima';index"`

	ReadAt *time.Time
	ReadBy *uint
}

func (SuratMasuk) TableName() string {
	return "surat_masuk"
}

// --- Helper Methods ---

func (s *SuratMasuk) IsDiarsipkan() bool { return s.Status == MasukDiarsipkan }

// SudahDibaca berlaku untuk dibaca atau status mana pun sesudahnya;
// MarkRead pada surat seperti ini adalah no-op.
func (s *SuratMasuk) SudahDibaca() bool {
	return s.Status != MasukDiterima
}

func (s StatusSuratMasuk) IsValid() bool {
	switch s {
	case MasukDiterima, MasukDibaca, MasukDidisposisikan, MasukDiarsipkan:
		return true
	default:
		return false
	}
}
