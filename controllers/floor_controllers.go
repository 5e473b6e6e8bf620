package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrisetia/reservation-app/store"
	"github.com/andrisetia/reservation-app/utils"
)

type FloorController struct {
	Floor *store.FloorView
}

func NewFloorController(floor *store.FloorView) *FloorController {
	return &FloorController{Floor: floor}
}

// GetFloorPlan -> every table joined with its reservations for ?date=
// (defaults to today)
func (fc *FloorController) GetFloorPlan(c *gin.Context) {
	views, err := fc.Floor.TablesWithReservations(c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor plan", views)
}

// GetFloorStats -> table counts per status
func (fc *FloorController) GetFloorStats(c *gin.Context) {
	stats, err := fc.Floor.Stats()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor stats", stats)
}
