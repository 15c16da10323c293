package services

import (
	"errors"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// CanUserRegisterSurat - Cek izin mencatat surat (masuk maupun keluar)
func (ps *PermissionService) CanUserRegisterSurat(user *models.User) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	return user.IsTataUsaha() || user.IsAdmin(), nil
}

// CanUserArchiveSurat - Cek izin mengarsip/membatalkan arsip
func (ps *PermissionService) CanUserArchiveSurat(user *models.User) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	return user.IsTataUsaha() || user.IsAdmin(), nil
}

// CanUserViewSuratMasuk - Admin dan tata usaha melihat semua; pejabat
// hanya surat yang sampai kepadanya lewat rantai disposisi.
func (ps *PermissionService) CanUserViewSuratMasuk(user *models.User, sm *models.SuratMasuk) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	if sm == nil {
		return false, ErrNotFound
	}
	if user.IsAdmin() || user.IsTataUsaha() {
		return true, nil
	}
	return canViewIn(ps.db, user.ID, sm)
}

// GetSuratMasukByID - Helper fetch surat masuk
func (ps *PermissionService) GetSuratMasukByID(id uint) (*models.SuratMasuk, error) {
	var sm models.SuratMasuk
	err := ps.db.
		Preload("Document").
		Preload("Penerima").
		First(&sm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sm, nil
}
