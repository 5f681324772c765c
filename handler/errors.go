package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/utils"
)

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case model.IsValidationError(err):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNoteNotFound),
		errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrSessionNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmailExists):
		utils.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTwoFactorRequired),
		errors.Is(err, model.ErrTwoFactorInvalid):
		utils.Unauthorized(c, err.Error())
	default:
		utils.InternalError(c, "internal error")
	}
}
