package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTataUsaha Role = "tata_usaha" // pencatat surat (registrasi & arsip)
	RolePejabat   Role = "pejabat"    // pemilik disposisi sesuai jabatan
)

type User struct {
	gorm.Model
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(30);not null;index"`

	// Setiap user memegang tepat satu jabatan.
	JabatanID uint     `gorm:"not null;index"`
	Jabatan   *Jabatan `gorm:"foreignKey:JabatanID"`
}

func (User) TableName() string {
	return "users"
}

// --- Helper Methods ---

func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsTataUsaha() bool { return u.Role == RoleTataUsaha }
func (u *User) IsPejabat() bool   { return u.Role == RolePejabat }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTataUsaha, RolePejabat:
		return true
	default:
		return false
	}
}
