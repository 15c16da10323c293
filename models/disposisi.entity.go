package models

import "gorm.io/gorm"

// Disposisi mencatat penerusan satu surat masuk dari pengirim ke penerima.
// Referensi ke user dan surat bersifat non-owning; dipakai untuk cek
// visibilitas rantai, bukan kepemilikan.
type Disposisi struct {
	gorm.Model
	SuratMasukID uint        `gorm:"not null;index"`
	SuratMasuk   *SuratMasuk `gorm:"foreignKey:SuratMasukID"`

	PengirimID uint  `gorm:"not null;index"`
	Pengirim   *User `gorm:"foreignKey:PengirimID"`
	PenerimaID uint  `gorm:"not null;index"`
	Penerima   *User `gorm:"foreignKey:PenerimaID"`

	Instruksi string `gorm:"type:text;not null"`
	Catatan   string `gorm:"type:text"`
}

func (Disposisi) TableName() string {
	return "disposisi"
}
