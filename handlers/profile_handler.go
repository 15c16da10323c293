package handlers

import (
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub001/config"
	"github.com/Ahadan1/SIPAS-Public-sub001/dto"
	"github.com/Ahadan1/SIPAS-Public-sub001/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// GetMyProfile - Profil user yang sedang login beserta jabatannya.
func GetMyProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := config.DB.Preload("Jabatan").First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User tidak ditemukan")
	}

	return utils.OK(c, "Profil user", dto.NewUserSummary(user))
}

// UpdateMyProfile - User mengubah nama atau password sendiri. Role dan
// jabatan hanya bisa diubah admin.
func UpdateMyProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User tidak ditemukan")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		pwd := strings.TrimSpace(*req.Password)
		if pwd != "" {
			if len(pwd) < 8 {
				return utils.BadRequest(c, "Password minimal 8 karakter", nil)
			}
			hash, err := utils.HashPassword(pwd)
			if err != nil {
				return utils.InternalServerError(c, "Gagal memproses password")
			}
			user.PasswordHash = hash
		}
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memperbarui profil")
	}

	config.DB.Preload("Jabatan").First(&user, user.ID)
	return utils.OK(c, "Profil berhasil diperbarui", dto.NewUserSummary(user))
}
