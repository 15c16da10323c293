package models

// JenisNaskah adalah referensi jenis naskah dinas (SK, ND, UND, dst).
// Kode dipakai sebagai prefix nomor surat.
type JenisNaskah struct {
	ID       uint   `gorm:"primaryKey;autoIncrement:true" json:"id"`
	Kode     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"kode"`
	Nama     string `gorm:"type:varchar(150);not null" json:"nama"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (JenisNaskah) TableName() string {
	return "jenis_naskah"
}

// Klasifikasi adalah referensi klasifikasi arsip (EKN, KPG, dst).
// Kode dipakai pada segmen klasifikasi nomor surat.
type Klasifikasi struct {
	ID       uint   `gorm:"primaryKey;autoIncrement:true" json:"id"`
	Kode     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"kode"`
	Nama     string `gorm:"type:varchar(150);not null" json:"nama"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (Klasifikasi) TableName() string {
	return "klasifikasi"
}
