package models

import (
	"time"

	"gorm.io/gorm"
)

type SifatKeamanan string
type SifatUrgensi string

const (
	KeamananBiasa    SifatKeamanan = "biasa"
	KeamananTerbatas SifatKeamanan = "terbatas"
	KeamananRahasia  SifatKeamanan = "rahasia"
)

const (
	UrgensiBiasa  SifatUrgensi = "biasa"
	UrgensiSegera SifatUrgensi = "segera"
	UrgensiKilat  SifatUrgensi = "kilat"
)

// Document adalah naskah inti yang dibungkus oleh SuratMasuk atau
// SuratKeluar (1:1). Nomor surat diberikan satu kali saat registrasi dan
// tidak pernah berubah setelahnya.
type Document struct {
	gorm.Model
	NomorSurat string `gorm:"type:varchar(100);uniqueIndex;not null"`

	// NomorUrut unik dalam scope {jenis_naskah_id, klasifikasi_id, tahun}.
	// Tahun diambil dari tanggal surat, bukan jam server, supaya registrasi
	// mundur tetap ikut rebutan urutan tahun yang sama.
	NomorUrut int `gorm:"not null;uniqueIndex:uniq_nomor_urut_scope,priority:4"`
	Tahun     int `gorm:"not null;uniqueIndex:uniq_nomor_urut_scope,priority:3;index"`

	JenisNaskahID uint         `gorm:"not null;uniqueIndex:uniq_nomor_urut_scope,priority:1;index"`
	JenisNaskah   *JenisNaskah `gorm:"foreignKey:JenisNaskahID"`
	KlasifikasiID uint         `gorm:"not null;uniqueIndex:uniq_nomor_urut_scope,priority:2;index"`
	Klasifikasi   *Klasifikasi `gorm:"foreignKey:KlasifikasiID"`

	Perihal      string    `gorm:"type:varchar(255);not null;index"`
	TanggalSurat time.Time `gorm:"type:date;not null"`

	SifatKeamanan SifatKeamanan `gorm:"type:varchar(20);not null;default:'biasa'"`
	SifatUrgensi  SifatUrgensi  `gorm:"type:varchar(20);not null;default:'biasa'"`

	FilePath string `gorm:"type:varchar(255)"`

	// Pencatat dokumen.
	UserID uint  `gorm:"not null;index"`
	User   *User `gorm:"foreignKey:UserID"`
}

func (Document) TableName() string {
	return "documents"
}

func (s SifatKeamanan) IsValid() bool {
	switch s {
	case KeamananBiasa, KeamananTerbatas, KeamananRahasia:
		return true
	default:
		return false
	}
}

func (s SifatUrgensi) IsValid() bool {
	switch s {
	case UrgensiBiasa, UrgensiSegera, UrgensiKilat:
		return true
	default:
		return false
	}
}
