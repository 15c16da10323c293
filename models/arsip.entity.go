package models

import (
	"time"

	"gorm.io/gorm"
)

// SuratType adalah discriminator rujukan polimorfik arsip.
type SuratType string

const (
	SuratTypeMasuk  SuratType = "masuk"
	SuratTypeKeluar SuratType = "keluar"
)

// Arsip menautkan tepat satu surat (masuk atau keluar) ke lokasi arsip.
// Unique index (surat_type, surat_id) menjamin satu surat hanya
// diarsipkan sekali sepanjang hidupnya.
type Arsip struct {
	gorm.Model
	SuratType SuratType `gorm:"type:varchar(20);not null;uniqueIndex:uniq_arsip_surat,priority:1"`
	SuratID   uint      `gorm:"not null;uniqueIndex:uniq_arsip_surat,priority:2"`

	UnitKerja   string `gorm:"type:varchar(50);not null;index"`
	LokasiFisik string `gorm:"type:varchar(150)"`
	Keterangan  string `gorm:"type:text"`

	ArchivedByID uint      `gorm:"not null;index"`
	ArchivedBy   *User     `gorm:"foreignKey:ArchivedByID"`
	ArchivedAt   time.Time `gorm:"not null"`
}

func (Arsip) TableName() string {
	return "arsip"
}

func (t SuratType) IsValid() bool {
	switch t {
	case SuratTypeMasuk, SuratTypeKeluar:
		return true
	default:
		return false
	}
}
