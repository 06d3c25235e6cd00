package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads a numeric path param, answering 400 itself on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError converts domain errors into the API envelope:
// validation -> 400 with the field map, forbidden -> 403, missing -> 404,
// duplicates -> 409, anything else -> 500.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONFieldErrors(c, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrDuplicateEnquiry),
		errors.Is(err, services.ErrDuplicateRoomNumber),
		errors.Is(err, services.ErrDuplicateBedNumber):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
