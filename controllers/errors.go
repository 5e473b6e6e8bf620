package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/utils"
)

// CustomError carries a user-facing message without leaking internals.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var ErrInvalidID = &CustomError{"invalid id parameter"}

// parseID reads a positive integer path parameter; responds 400 itself and
// returns false when the value is malformed.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps a missing record to 404 and everything else to 500.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}
