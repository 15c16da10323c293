package handlers

import (
	"errors"

	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleServiceError memetakan error dari layer service ke response HTTP.
// Pesan error service sudah menyebut status/aksi yang relevan, jadi cukup
// diteruskan apa adanya.
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAlreadyArchived):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.Conflict(c, err.Error())
	case services.IsInvalidTransition(err):
		return utils.Conflict(c, err.Error())
	case services.IsHierarchyViolation(err):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	default:
		return utils.InternalServerError(c, "Terjadi kesalahan pada server")
	}
}
