package middleware

import (
	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin selalu ikut lolos pada shorthand role fungsional.

func RequireTataUsaha() fiber.Handler {
	return AuthorizeRoles(models.RoleTataUsaha, models.RoleAdmin)
}

func RequirePejabat() fiber.Handler {
	return AuthorizeRoles(models.RolePejabat, models.RoleAdmin)
}

func RequireAdmin() fiber.Handler {
	return AuthorizeRoles(models.RoleAdmin)
}

// GetUserFromContext membangun User ringan dari klaim JWT; cukup untuk
// cek role dan identitas tanpa query tambahan.
func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	claims, ok := GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return &models.User{
		Model: gorm.Model{ID: claims.UserID},
		Role:  claims.Role,
		Email: claims.Email,
	}, nil
}
